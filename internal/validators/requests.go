package validators

import (
	"math"
	"regexp"
	"strconv"

	"github.com/coinkeep/coin-keeper/models"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 3

// emailPattern accepts "local@domain.tld" shaped addresses. Intentionally
// loose: real deliverability is out of scope, the check only rejects
// obviously malformed input.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RequestValidator implements [Validator] for all API request payloads.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// ValidateRegister implements [Validator.ValidateRegister].
func (v *RequestValidator) ValidateRegister(req models.RegisterRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}

	if req.Password != req.PasswordConfirmation {
		return ErrPasswordConfirmationMismatch
	}

	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if req.Name == "" {
		return ErrEmptyName
	}

	return nil
}

// ValidateLogin implements [Validator.ValidateLogin].
func (v *RequestValidator) ValidateLogin(req models.LoginRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}

	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// ValidateCreateTransaction implements [Validator.ValidateCreateTransaction].
//
// The amount is parsed from its decimal text form here rather than decoded
// as float64 by the JSON layer, so that non-numeric input and non-finite
// values (NaN, ±Inf) are rejected instead of silently stored.
func (v *RequestValidator) ValidateCreateTransaction(kind models.TransactionKind, req models.CreateTransactionRequest) error {
	if !kind.Valid() {
		return ErrUnknownTransactionKind
	}

	amount, err := strconv.ParseFloat(req.Amount.String(), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}

	if req.Description == "" {
		return ErrEmptyDescription
	}

	return nil
}
