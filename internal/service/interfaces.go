package service

import (
	"context"
	"time"

	"github.com/coinkeep/coin-keeper/models"
)

// AuthService covers the account and session lifecycle: registration,
// login, token resolution, and logout.
type AuthService interface {
	// RegisterUser validates the payload, hashes the password, and creates
	// the account. The returned user carries server-assigned fields.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login validates the payload, verifies credentials, and issues a new
	// session. Fails if the user already holds an active session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, models.User, error)

	// Authenticate resolves a bearer token to the owning user record.
	Authenticate(ctx context.Context, token string) (models.User, error)

	// Logout deletes the session matching token. Idempotent: unknown
	// tokens succeed.
	Logout(ctx context.Context, token string) error
}

// LedgerService covers transaction recording and history retrieval.
type LedgerService interface {
	// AddTransaction validates and records a new ledger entry for user.
	// The booking date is taken from the service clock.
	AddTransaction(ctx context.Context, user models.User, kind models.TransactionKind, req models.CreateTransactionRequest) error

	// ListTransactions returns user's history in insertion order,
	// optionally restricted to a single kind.
	ListTransactions(ctx context.Context, user models.User, kind models.TransactionKind) ([]models.Transaction, error)
}

// Clock supplies the current time to the ledger service. Injected so that
// tests control the booking date of created transactions.
type Clock interface {
	Now() time.Time
}
