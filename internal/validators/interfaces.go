// Package validators provides schema checks for inbound request payloads.
//
// Validation is pure: no store access, no side effects. Each check reports
// only the first failure found, using a fixed precedence per request type,
// so clients always receive a single deterministic error for a given
// payload.
//
// Usage patterns:
//  1. Inject the Validator implementation into services or handlers.
//  2. Call the request-specific method before touching any store.
//  3. Match the returned sentinel error with errors.Is to classify it.
package validators

import (
	"github.com/coinkeep/coin-keeper/models"
)

// Validator validates inbound API request payloads.
type Validator interface {

	// ValidateRegister checks a registration payload. Failure precedence:
	// invalid email > password confirmation mismatch > password too short >
	// empty name.
	ValidateRegister(req models.RegisterRequest) error

	// ValidateLogin checks a login payload. Failure precedence:
	// invalid email > password too short.
	ValidateLogin(req models.LoginRequest) error

	// ValidateCreateTransaction checks a transaction payload together with
	// the kind taken from the URL. Failure precedence: unknown kind >
	// non-finite amount > empty description.
	ValidateCreateTransaction(kind models.TransactionKind, req models.CreateTransactionRequest) error
}
