package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/models"
)

// transactionRepository is the SQL-backed implementation of
// [TransactionRepository]. Ledger queries are built with squirrel because
// the list query shape varies with the optional kind filter.
type transactionRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AddTransaction persists a new immutable ledger entry. The id and
// created_at columns are server-assigned; callers never read them back from
// an insert because the create endpoint returns no body.
func (r *transactionRepository) AddTransaction(ctx context.Context, transaction models.Transaction) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(transaction.TableName()).
		Columns("owner_email", "kind", "amount", "description", "date").
		Values(transaction.OwnerEmail, transaction.Kind, transaction.Amount, transaction.Description, transaction.Date).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.AddTransaction").Msg("error: building insert query")
		return fmt.Errorf("error building sql query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*transactionRepository.AddTransaction").Msg("error: inserting transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ListByOwner returns every transaction owned by ownerEmail in insertion
// order. A non-empty kind restricts the result to that transaction kind.
func (r *transactionRepository) ListByOwner(ctx context.Context, ownerEmail string, kind models.TransactionKind) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	listQuery := r.builder.
		Select("id", "owner_email", "kind", "amount", "description", "date", "created_at").
		From(models.Transaction{}.TableName()).
		Where(sq.Eq{"owner_email": ownerEmail}).
		OrderBy("id ASC")

	if kind != "" {
		listQuery = listQuery.Where(sq.Eq{"kind": kind})
	}

	query, args, err := listQuery.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListByOwner").Msg("error: building list query")
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListByOwner").Msg("error: querying transactions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.OwnerEmail, &t.Kind, &t.Amount, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			log.Err(err).Str("func", "*transactionRepository.ListByOwner").Msg("error: scanning transaction row")
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListByOwner").Msg("error: iterating transaction rows")
		return nil, fmt.Errorf("failed to scan transaction rows: %w", err)
	}

	return transactions, nil
}
