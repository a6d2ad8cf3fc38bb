package service

import "errors"

var (
	// ErrWrongPassword is returned by Login when the presented password
	// does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrHashingPassword is returned when bcrypt fails to hash a password
	// during registration.
	ErrHashingPassword = errors.New("error hashing password")
)
