package credstore

import (
	"errors"

	"github.com/iudanet/campusauth/internal/crypto"
)

// Credential store errors. Callers match them with errors.Is.
var (
	// ErrAlreadyExists indicates that a user with this email is already registered
	ErrAlreadyExists = errors.New("user already exists")

	// ErrNotFound indicates that no user matches the email
	ErrNotFound = errors.New("user not found")

	// ErrWrongPassword indicates that the password does not match the stored hash
	ErrWrongPassword = errors.New("incorrect password")

	// ErrTokenInvalid indicates an unknown or already consumed reset token
	ErrTokenInvalid = errors.New("invalid reset token")

	// ErrTokenExpired indicates a reset token past its deadline; the token is removed
	ErrTokenExpired = errors.New("reset token expired")

	// ErrCryptoUnavailable indicates that the random source failed
	ErrCryptoUnavailable = crypto.ErrCryptoUnavailable

	// ErrStorageUnavailable indicates that the document could not be read or written
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// User-facing messages for successful operations.
const (
	MsgRegistered    = "Registration successful! Please log in."
	MsgPasswordReset = "Password has been reset successfully."
	MsgTokenIssued   = "Password reset link generated. In a real application, this would be emailed to you."
)

// Message renders err as a message suitable for showing to the person at the keyboard.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAlreadyExists):
		return "A user with this email already exists."
	case errors.Is(err, ErrNotFound):
		return "User not found."
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password."
	case errors.Is(err, ErrTokenInvalid):
		return "Invalid or expired token."
	case errors.Is(err, ErrTokenExpired):
		return "Token has expired."
	case errors.Is(err, ErrCryptoUnavailable):
		return "Secure random source is unavailable. Please try again later."
	case errors.Is(err, ErrStorageUnavailable):
		return "Account storage is unavailable. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
