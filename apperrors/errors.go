// Package apperrors defines the internal failure taxonomy. Services return
// these sentinels (possibly wrapped); the controller layer owns translating
// them into HTTP statuses so no raw store or crypto detail leaks outward.
package apperrors

import "errors"

var (
	// ErrNotFound signals a lookup miss in the user store.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists signals a unique-email conflict on create.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrNotAuthenticated signals a credential mismatch at login.
	ErrNotAuthenticated = errors.New("wrong email or password")

	// ErrInvalidToken signals a malformed token, a bad signature, or any
	// identity-resolution failure deliberately folded into it.
	ErrInvalidToken = errors.New("invalid token credentials")

	// ErrTokenExpired signals a token whose exp claim has elapsed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTemplateNotFound signals an unknown mail template name.
	ErrTemplateNotFound = errors.New("template not found")
)

// MsgInvalidToken is the single external message for every token failure,
// shared by the error translator and the auth middleware.
const MsgInvalidToken = "Invalid token credentials"
