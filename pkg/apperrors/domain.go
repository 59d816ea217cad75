package apperrors

import (
	"net/http"
)

// Factories for the common business-level failures. Services use these to
// translate repository sentinel errors into transport-ready AppErrors.

// ErrNotFound wraps a repository "record not found" into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- predefined auth errors ---

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email is already registered", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 6 characters long", http.StatusBadRequest)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired       = New(CodeTokenExpired, "auth", "Token has expired", http.StatusUnauthorized)
)
