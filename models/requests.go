package models

import "encoding/json"

// RegisterRequest is the payload of POST /api/register.
type RegisterRequest struct {
	// Name is the display name of the new account. Required, non-empty.
	Name string `json:"name"`

	// Email is the unique account identifier. Must be valid email syntax.
	Email string `json:"email"`

	// Password is the plaintext password. Minimum length 3; it is hashed
	// before it ever reaches the store.
	Password string `json:"password"`

	// PasswordConfirmation must equal Password exactly.
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the payload of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTransactionRequest is the payload of POST /api/transactions/{kind}.
//
// Amount is carried as json.Number rather than float64 so that the
// validator can reject non-numeric and non-finite input explicitly
// instead of letting the JSON decoder coerce it.
type CreateTransactionRequest struct {
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
}
