package store

// User and session queries are fixed-shape and kept as plain constants.
// Ledger queries vary by filter and are built with squirrel in
// repository_transaction.go.
const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createSession = `INSERT INTO sessions (token, user_id)
    VALUES ($1, $2);`

	findSessionByToken = `SELECT token, user_id, created_at
    FROM sessions
    WHERE token = $1;`

	deleteSessionByToken = `DELETE FROM sessions
    WHERE token = $1;`
)
