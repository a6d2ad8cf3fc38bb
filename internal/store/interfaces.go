package store

import (
	"context"

	"github.com/coinkeep/coin-keeper/models"
)

// UserRepository persists user identity records. Users are created on
// registration and never mutated or deleted afterwards.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository persists the single active session per user.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)
	// DeleteSessionByToken removes the session matching token. Deleting a
	// token with no session is not an error.
	DeleteSessionByToken(ctx context.Context, token string) error
}

// TransactionRepository persists immutable ledger entries keyed by owner
// email.
type TransactionRepository interface {
	AddTransaction(ctx context.Context, transaction models.Transaction) error
	// ListByOwner returns the owner's history in insertion order. When kind
	// is non-empty the result is restricted to that transaction kind.
	ListByOwner(ctx context.Context, ownerEmail string, kind models.TransactionKind) ([]models.Transaction, error)
}

// ErrorClassifier inspects driver-level errors so that repositories can map
// backend-specific failure codes onto the package's sentinel errors without
// knowing which database they run against.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a violated
	// unique constraint or primary key.
	IsUniqueViolation(err error) bool
}
