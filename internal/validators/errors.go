package validators

import "errors"

var (
	ErrInvalidEmail                 = errors.New("invalid email address")
	ErrPasswordConfirmationMismatch = errors.New("password confirmation does not match")
	ErrPasswordTooShort             = errors.New("password is too short")
	ErrEmptyName                    = errors.New("name is required")
	ErrEmptyDescription             = errors.New("description is required")
	ErrInvalidAmount                = errors.New("amount must be a finite number")
	ErrUnknownTransactionKind       = errors.New("unknown transaction kind")
)
