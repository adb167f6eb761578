// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-leave-desk/models"
)

const (
	FieldCode         = "code"
	FieldDuration     = "duration"
	FieldDurationType = "duration_type"
	FieldMaxUses      = "max_uses"
)

const (
	minAccessCodeLength = 4
	maxAccessCodeLength = 64
)

// AccessCodeValidator validates access codes created by administrators.
type AccessCodeValidator struct{}

func NewAccessCodeValidator() Validator {
	return &AccessCodeValidator{}
}

func (v *AccessCodeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccessCode:
		return v.validateAccessCode(value, fields...)
	case *models.AccessCode:
		return v.validateAccessCode(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccessCodeValidator) validateAccessCode(code models.AccessCode, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldDuration, FieldDurationType, FieldMaxUses}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if !isValidAccessCode(strings.TrimSpace(code.Code)) {
				return ErrInvalidAccessCode
			}
		case FieldDuration:
			if code.Duration <= 0 {
				return ErrInvalidDuration
			}
		case FieldDurationType:
			if !code.DurationType.IsKnown() {
				return ErrInvalidDurationType
			}
		case FieldMaxUses:
			if code.MaxUses != nil && *code.MaxUses <= 0 {
				return ErrInvalidMaxUses
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidAccessCode(code string) bool {
	if len(code) < minAccessCodeLength || len(code) > maxAccessCodeLength {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
