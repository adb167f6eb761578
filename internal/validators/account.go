// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/hex"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-leave-desk/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldAccessCode  = "access_code"
	FieldToken       = "token"
	FieldNewPassword = "new_password"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// AccountPolicy holds the configurable length rules.
type AccountPolicy struct {
	MinPasswordLength int
	MinNameLength     int
}

// AccountValidator validates registration, login, verification and
// password reset payloads.
type AccountValidator struct {
	policy AccountPolicy
}

// NewAccountValidator builds a [Validator] enforcing policy.
func NewAccountValidator(policy AccountPolicy) Validator {
	return &AccountValidator{policy: policy}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.VerifyEmailRequest:
		return validateToken(value.Token)
	case models.ForgotPasswordRequest:
		return validateEmail(value.Email)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegistration(req models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName, FieldAccessCode}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validateNewPassword(req.Password); err != nil {
				return err
			}
		case FieldFirstName:
			if utf8.RuneCountInString(strings.TrimSpace(req.FirstName)) < v.policy.MinNameLength {
				return ErrFirstNameTooShort
			}
		case FieldLastName:
			if utf8.RuneCountInString(strings.TrimSpace(req.LastName)) < v.policy.MinNameLength {
				return ErrLastNameTooShort
			}
		case FieldAccessCode:
			// optional
			if code := strings.TrimSpace(req.AccessCode); code != "" && !isValidAccessCode(code) {
				return ErrInvalidAccessCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			// length rules are not applied to logins so that accounts created
			// under an older policy can still sign in
			if req.Password == "" {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateResetPassword(req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if err := validateToken(req.Token); err != nil {
				return err
			}
		case FieldNewPassword:
			if err := v.validateNewPassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < v.policy.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	// reject display-name forms such as "Ada <ada@example.com>"
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// validateToken accepts hex-encoded tokens only.
func validateToken(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if len(token) > 256 {
		return ErrInvalidToken
	}
	if _, err := hex.DecodeString(token); err != nil {
		return ErrInvalidToken
	}
	return nil
}
