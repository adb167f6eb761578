package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "secret-key"
)

func TestGenerateCSRFToken_Success(t *testing.T) {
	token, err := GenerateCSRFToken(testIssuer, "session-hash", time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSignKey), nil
	})
	if err != nil {
		t.Fatalf("could not parse generated token: %v", err)
	}
	if claims.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, claims.Issuer)
	}
	if claims.Subject != "session-hash" {
		t.Errorf("expected subject 'session-hash', got %s", claims.Subject)
	}
}

func TestGenerateCSRFToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "s", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "s", 0, "key"},
		{"empty key", "iss", "s", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCSRFToken(tt.issuer, tt.subject, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateCSRFToken(t *testing.T) {
	valid, err := GenerateCSRFToken(testIssuer, "session-hash", time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	expired, err := GenerateCSRFToken(testIssuer, "session-hash", -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name        string
		token       string
		key         string
		issuer      string
		sessionHash string
		wantErr     bool
		wantSubject bool
	}{
		{"valid", valid, testSignKey, testIssuer, "session-hash", false, false},
		{"other session", valid, testSignKey, testIssuer, "other-hash", true, true},
		{"wrong key", valid, "other-key", testIssuer, "session-hash", true, false},
		{"wrong issuer", valid, testSignKey, "someone-else", "session-hash", true, false},
		{"expired", expired, testSignKey, testIssuer, "session-hash", true, false},
		{"garbage", "not.a.jwt", testSignKey, testIssuer, "session-hash", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCSRFToken(tt.token, tt.key, tt.issuer, tt.sessionHash)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if tt.wantSubject && !errors.Is(err, ErrCSRFSubjectMismatch) {
				t.Errorf("expected ErrCSRFSubjectMismatch, got %v", err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc", "abc", false},
		{"lower-case scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer   abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
