package service

import "errors"

var (
	// ErrValidation wraps a validators rule violation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned by sign-in for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers every failed access or refresh token check.
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenCreationFailed    = errors.New("token creation failed")
	ErrTokenPersistenceFailed = errors.New("refresh token persistence failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUserNotFound     = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already used")

	ErrBankAccountNotFound      = errors.New("bank account not found")
	ErrBankAccountAlreadyExists = errors.New("bank account already exists")

	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")

	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSessionExpired is returned by client services when the session
	// could not be refreshed and has been cleared.
	ErrSessionExpired = errors.New("session expired")
	// ErrServerUnavailable is returned by client services for 5xx answers.
	ErrServerUnavailable = errors.New("server unavailable")
)
