package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrCSRFSubjectMismatch is returned when a CSRF token was issued for a
// different session.
var ErrCSRFSubjectMismatch = errors.New("csrf token does not belong to this session")

// GenerateCSRFToken creates a signed HMAC-SHA256 JWT bound to a session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the keyed hash of the session token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	csrf, err := utils.GenerateCSRFToken("leave-desk", sessionHash, time.Hour, "secret")
func GenerateCSRFToken(issuer, sessionHash string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || sessionHash == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating CSRF token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionHash,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing CSRF token: %w", err)
	}

	return tokenString, nil
}

// ValidateCSRFToken validates the signature, issuer and expiry of a CSRF
// token and checks that it was issued for sessionHash.
//
// Example usage:
//
//	if err := utils.ValidateCSRFToken(header, "secret", "leave-desk", sessionHash); err != nil {
//	    // reject the request
//	}
func ValidateCSRFToken(tokenString, signKey, issuer, sessionHash string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("error occurred validating CSRF token: %w", err)
	}

	if !EqualHashes(claims.Subject, sessionHash) {
		return ErrCSRFSubjectMismatch
	}

	return nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
