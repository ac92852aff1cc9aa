package user

import "errors"

// ErrEmailTaken is returned when registration hits an existing account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrInvalidCredentials is returned when email/password authentication fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound is returned when no user matches the given ID or email.
var ErrUserNotFound = errors.New("user not found")
