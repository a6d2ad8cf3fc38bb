package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
//
// The sessions table carries a unique index on user_id, so the
// one-session-per-user invariant holds even when two logins for the same
// account race: the second INSERT fails with a unique violation instead of
// slipping past an application-level existence check.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session record.
//
// Error handling:
//   - unique constraint violation (user already has a session, or in the
//     astronomically unlikely case of a token collision) → [ErrSessionAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, session.Token, session.UserID); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("active session already exists")
			return ErrSessionAlreadyExists
		}

		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: inserting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindSessionByToken retrieves the session record matching token.
//
// Error handling:
//   - no matching row → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var foundSession models.Session
	row := r.db.QueryRowContext(ctx, findSessionByToken, token)

	if err := row.Scan(&foundSession.Token, &foundSession.UserID, &foundSession.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: scanning session row")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundSession, nil
}

// DeleteSessionByToken removes the session matching token. The delete is
// idempotent: a token with no backing session succeeds without error.
func (r *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionByToken, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByToken").Msg("error: deleting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
