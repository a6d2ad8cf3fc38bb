package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/store"
	"github.com/coinkeep/coin-keeper/internal/validators"
	"github.com/coinkeep/coin-keeper/models"
)

// bookingDateLayout renders the transaction date as "day/month", no year,
// from the server's local clock.
const bookingDateLayout = "02/01"

// ledgerService is the concrete implementation of LedgerService.
type ledgerService struct {
	transactionRepository store.TransactionRepository
	validator             validators.Validator
	clock                 Clock
	logger                *logger.Logger
}

// NewLedgerService constructs a LedgerService over the given repository.
// The clock supplies booking dates for new transactions.
func NewLedgerService(transactionRepository store.TransactionRepository, validator validators.Validator, clock Clock, logger *logger.Logger) LedgerService {
	return &ledgerService{
		transactionRepository: transactionRepository,
		validator:             validator,
		clock:                 clock,
		logger:                logger,
	}
}

// AddTransaction validates and records a new ledger entry owned by user.
//
// Returns:
//   - A validation sentinel from the validators package (unknown kind,
//     non-finite amount, empty description).
//   - A wrapped storage error if the insert fails.
func (l *ledgerService) AddTransaction(ctx context.Context, user models.User, kind models.TransactionKind, req models.CreateTransactionRequest) error {
	log := logger.FromContext(ctx)

	if err := l.validator.ValidateCreateTransaction(kind, req); err != nil {
		log.Err(err).Str("kind", string(kind)).Msg("invalid transaction data provided")
		return err
	}

	// The validator already proved the amount parses as a finite float.
	amount, err := strconv.ParseFloat(req.Amount.String(), 64)
	if err != nil {
		return validators.ErrInvalidAmount
	}

	transaction := models.Transaction{
		OwnerEmail:  user.Email,
		Kind:        kind,
		Amount:      amount,
		Description: req.Description,
		Date:        l.clock.Now().Format(bookingDateLayout),
	}

	if err := l.transactionRepository.AddTransaction(ctx, transaction); err != nil {
		log.Err(err).Str("owner", user.Email).Msg("transaction creation ended with error")
		return fmt.Errorf("transaction creation ended with error: %w", err)
	}

	return nil
}

// ListTransactions returns user's full history in insertion order. A
// non-empty kind restricts the result; unknown kinds are rejected rather
// than silently matching nothing.
func (l *ledgerService) ListTransactions(ctx context.Context, user models.User, kind models.TransactionKind) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	if kind != "" && !kind.Valid() {
		log.Error().Str("kind", string(kind)).Msg("unknown transaction kind filter")
		return nil, validators.ErrUnknownTransactionKind
	}

	transactions, err := l.transactionRepository.ListByOwner(ctx, user.Email, kind)
	if err != nil {
		log.Err(err).Str("owner", user.Email).Msg("transaction history query failed")
		return nil, fmt.Errorf("transaction history query failed: %w", err)
	}

	return transactions, nil
}
