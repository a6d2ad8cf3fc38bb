package models

// LoginResponse is returned by POST /api/login on success.
type LoginResponse struct {
	// Token is the opaque session token to be presented as a bearer
	// credential on protected routes.
	Token string `json:"token"`

	// Name is the display name of the authenticated user.
	Name string `json:"name"`
}

// TransactionListResponse is returned by GET /api/transactions.
// It carries the full transaction history of the authenticated user
// together with the owner's identity.
type TransactionListResponse struct {
	// Transactions is the user's history in insertion order.
	Transactions []Transaction `json:"transactions"`

	// Name is the display name of the owner.
	Name string `json:"name"`

	// UserID is the internal identifier of the owner.
	UserID int64 `json:"id"`
}
