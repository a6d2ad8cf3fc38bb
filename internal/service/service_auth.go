package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/coinkeep/coin-keeper/internal/config"
	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/store"
	"github.com/coinkeep/coin-keeper/internal/utils"
	"github.com/coinkeep/coin-keeper/internal/validators"
	"github.com/coinkeep/coin-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session
// lifecycle using a UserRepository and SessionRepository for persistence
// and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer used to create, resolve,
	// and delete session records.
	sessionRepository store.SessionRepository

	// validator schema-checks every inbound payload before any store access.
	validator validators.Validator

	// tokens produces the opaque random strings used as session tokens.
	tokens *utils.TokenGenerator

	// hashCost is the bcrypt cost factor applied when hashing passwords.
	hashCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, validator validators.Validator, tokens *utils.TokenGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validator,
		tokens:            tokens,
		hashCost:          cfg.PasswordHashCost,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the payload, hashes the password with bcrypt at the
// configured cost, and delegates persistence to the UserRepository.
// Duplicate emails surface as store.ErrEmailAlreadyExists from the
// repository's unique constraint; there is no separate existence check
// that a concurrent registration could race past.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A validation sentinel from the validators package.
//   - ErrHashingPassword if bcrypt rejects the password.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateRegister(req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session.
//
// It validates the payload, looks up the account by email, compares the
// presented password against the stored bcrypt hash, and creates a session
// with a fresh opaque token. The sessions table's unique index on user_id
// rejects a second concurrent login.
//
// Returns the new session and the authenticated user record, or:
//   - A validation sentinel from the validators package.
//   - A wrapped store.ErrNoUserWasFound if no account matches the email.
//   - ErrWrongPassword if the hash comparison fails.
//   - A wrapped store.ErrSessionAlreadyExists if the user is already logged in.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateLogin(req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.Session{}, models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Session{}, models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Err(err).
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.Session{}, models.User{}, ErrWrongPassword
	}

	session := models.Session{
		Token:  a.tokens.Generate(),
		UserID: foundUser.UserID,
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("session creation ended with error")
		return models.Session{}, models.User{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	return session, foundUser, nil
}

// Authenticate resolves a bearer token to the owning user record.
//
// It looks up the session by token and then the user by the session's
// user id. A missing session surfaces as a wrapped
// store.ErrSessionNotFound; a session whose user has vanished surfaces as
// a wrapped store.ErrNoUserWasFound rather than a panic.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Int64("id", session.UserID).Msg("session points to missing user")
		return models.User{}, fmt.Errorf("session points to missing user: %w", err)
	}

	return user, nil
}

// Logout deletes the session matching token. The delete is idempotent, so
// logging out with an unknown or already-deleted token succeeds.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteSessionByToken(ctx, token); err != nil {
		log.Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}
