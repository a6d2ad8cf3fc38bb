package validators

import (
	"encoding/json"
	"testing"

	"github.com/coinkeep/coin-keeper/models"
	"github.com/stretchr/testify/assert"
)

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		Name:                 "Ana",
		Email:                "a@x.com",
		Password:             "abcd",
		PasswordConfirmation: "abcd",
	}
}

func TestValidateRegister(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantErr error
	}{
		{"valid", func(r *models.RegisterRequest) {}, nil},
		{"missing email", func(r *models.RegisterRequest) { r.Email = "" }, ErrInvalidEmail},
		{"malformed email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"email without domain dot", func(r *models.RegisterRequest) { r.Email = "a@host" }, ErrInvalidEmail},
		{"confirmation mismatch", func(r *models.RegisterRequest) { r.PasswordConfirmation = "other" }, ErrPasswordConfirmationMismatch},
		{"short password", func(r *models.RegisterRequest) { r.Password = "ab"; r.PasswordConfirmation = "ab" }, ErrPasswordTooShort},
		{"empty name", func(r *models.RegisterRequest) { r.Name = "" }, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := v.ValidateRegister(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestValidateRegister_Precedence verifies that only the first failure in the
// fixed precedence order is reported when several fields are invalid.
func TestValidateRegister_Precedence(t *testing.T) {
	v := NewRequestValidator()

	// everything wrong at once: email error wins
	err := v.ValidateRegister(models.RegisterRequest{
		Name:                 "",
		Email:                "bogus",
		Password:             "a",
		PasswordConfirmation: "b",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	// valid email: confirmation mismatch beats password length
	err = v.ValidateRegister(models.RegisterRequest{
		Name:                 "",
		Email:                "a@x.com",
		Password:             "a",
		PasswordConfirmation: "b",
	})
	assert.ErrorIs(t, err, ErrPasswordConfirmationMismatch)

	// matching short passwords: length beats empty name
	err = v.ValidateRegister(models.RegisterRequest{
		Name:                 "",
		Email:                "a@x.com",
		Password:             "ab",
		PasswordConfirmation: "ab",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestValidateLogin(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.ValidateLogin(models.LoginRequest{Email: "a@x.com", Password: "abcd"}))
	assert.ErrorIs(t, v.ValidateLogin(models.LoginRequest{Email: "bogus", Password: "abcd"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.ValidateLogin(models.LoginRequest{Email: "a@x.com", Password: "ab"}), ErrPasswordTooShort)
	// both invalid: email syntax wins
	assert.ErrorIs(t, v.ValidateLogin(models.LoginRequest{Email: "bogus", Password: ""}), ErrInvalidEmail)
}

func TestValidateCreateTransaction(t *testing.T) {
	v := NewRequestValidator()

	valid := models.CreateTransactionRequest{Amount: json.Number("50"), Description: "salary"}
	assert.NoError(t, v.ValidateCreateTransaction(models.Deposit, valid))
	assert.NoError(t, v.ValidateCreateTransaction(models.Withdrawal, models.CreateTransactionRequest{Amount: json.Number("12.5"), Description: "groceries"}))

	assert.ErrorIs(t, v.ValidateCreateTransaction("transfer", valid), ErrUnknownTransactionKind)
	assert.ErrorIs(t, v.ValidateCreateTransaction("", valid), ErrUnknownTransactionKind)

	nonNumeric := models.CreateTransactionRequest{Amount: json.Number("abc"), Description: "salary"}
	assert.ErrorIs(t, v.ValidateCreateTransaction(models.Deposit, nonNumeric), ErrInvalidAmount)

	missingAmount := models.CreateTransactionRequest{Description: "salary"}
	assert.ErrorIs(t, v.ValidateCreateTransaction(models.Deposit, missingAmount), ErrInvalidAmount)

	nan := models.CreateTransactionRequest{Amount: json.Number("NaN"), Description: "salary"}
	assert.ErrorIs(t, v.ValidateCreateTransaction(models.Deposit, nan), ErrInvalidAmount)

	inf := models.CreateTransactionRequest{Amount: json.Number("Inf"), Description: "salary"}
	assert.ErrorIs(t, v.ValidateCreateTransaction(models.Deposit, inf), ErrInvalidAmount)

	noDescription := models.CreateTransactionRequest{Amount: json.Number("50")}
	assert.ErrorIs(t, v.ValidateCreateTransaction(models.Deposit, noDescription), ErrEmptyDescription)
}
