// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Token sizes in random bytes. Hex encoding doubles the visible length.
const (
	VerificationTokenBytes = 64
	SessionTokenBytes      = 32
	ResetTokenBytes        = 32
)

// GenerateToken returns n cryptographically random bytes, hex-encoded.
//
// Example usage:
//
//	token, err := utils.GenerateToken(utils.SessionTokenBytes)
func GenerateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Bearer tokens (session, verification, reset) are persisted only in this
// form, so a leaked table cannot be replayed without the key.
//
// Example usage:
//
//	tokenHash := utils.HashString(rawToken, "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// EqualHashes compares two hex digests in constant time.
func EqualHashes(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
