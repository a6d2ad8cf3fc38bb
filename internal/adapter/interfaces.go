// Package adapter provides a transport-layer client for the coin-keeper
// server.
//
// The primary abstraction is [APIClient], which decouples callers (CLI
// tooling, integration tests, other services) from the wire protocol. The
// package ships an HTTP/REST implementation ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/coinkeep/coin-keeper/models"
)

// APIClient defines transport-agnostic communication with the coin-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. Returns the created user or an error
	// if the request fails or the server responds with a non-2xx status
	// (e.g. [ErrConflict] when the email is already taken).
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates with the server. On success it stores the issued
	// session token via SetToken and returns the login response.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// AddTransaction records a transaction of the given kind for the
	// logged-in user. Requires a valid token.
	AddTransaction(ctx context.Context, kind models.TransactionKind, request models.CreateTransactionRequest) error

	// ListTransactions fetches the logged-in user's history, optionally
	// filtered by kind (pass an empty kind for the full history). Requires a
	// valid token.
	ListTransactions(ctx context.Context, kind models.TransactionKind) (models.TransactionListResponse, error)

	// Logout ends the current session and clears the stored token. It is a
	// no-op on the server side if the session is already gone.
	Logout(ctx context.Context) error
}
