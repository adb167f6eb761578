// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, token hashing,
// password hashing, HTTP response writing, and CSRF token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-leave-desk/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey holds the authenticated models.User of the request.
	UserCtxKey = contextKey("user")

	// SessionTokenCtxKey holds the raw session token the request was
	// authenticated with.
	SessionTokenCtxKey = contextKey("sessionToken")
)

// WithUser returns a copy of ctx carrying the authenticated user and the
// session token that authenticated them.
func WithUser(ctx context.Context, user models.User, sessionToken string) context.Context {
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return context.WithValue(ctx, SessionTokenCtxKey, sessionToken)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns ok == false when the request was not authenticated.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetSessionTokenFromContext retrieves the raw session token from the context.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok && token != ""
}
