package models

import "time"

// TransactionKind is the semantic type of a ledger entry.
type TransactionKind string

// The exhaustive set of transaction kinds accepted by the API.
// Any other value is rejected at validation time.
const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// Valid reports whether k is one of the recognised transaction kinds.
func (k TransactionKind) Valid() bool {
	return k == Deposit || k == Withdrawal
}

// Transaction is a single immutable ledger entry. Transactions are created
// once, never updated or deleted, and are queried by owner email.
type Transaction struct {
	// ID is the internal unique identifier of the transaction.
	ID int64 `json:"id"`

	// OwnerEmail references the owning user by email. The reference is
	// by value: the ledger never joins against the users table.
	OwnerEmail string `json:"owner_email"`

	// Kind is either Deposit or Withdrawal.
	Kind TransactionKind `json:"kind"`

	// Amount is the transaction value. Validated as a finite decimal
	// number; NaN and infinities never reach the store.
	Amount float64 `json:"amount"`

	// Description is a free-form user-provided label.
	Description string `json:"description"`

	// Date is the booking date in "day/month" format, computed from the
	// server's local clock at creation time.
	Date string `json:"date"`

	// CreatedAt is the server-assigned creation timestamp. It fixes the
	// insertion order used when listing history.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
