// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// DurationType is the unit of [AccessCode.Duration].
type DurationType string

const (
	DurationTypeDays   DurationType = "days"
	DurationTypeMonths DurationType = "months"
)

// IsKnown reports whether t is "days" or "months".
func (t DurationType) IsKnown() bool {
	return t == DurationTypeDays || t == DurationTypeMonths
}

// AccessCode grants an extended trial when redeemed at registration.
//
// A code is redeemable while it is active, has uses left (MaxUses nil means
// unlimited) and, if ExpiresAt is set, has not expired.
type AccessCode struct {
	ID           int64        `json:"id"`
	Code         string       `json:"code"`
	Description  string       `json:"description,omitempty"`
	Duration     int          `json:"duration"`
	DurationType DurationType `json:"duration_type"`
	MaxUses      *int         `json:"max_uses,omitempty"`
	CurrentUses  int          `json:"current_uses"`
	IsActive     bool         `json:"is_active"`
	CreatedBy    *int64       `json:"created_by,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the AccessCode model.
func (c AccessCode) TableName() string {
	return "access_codes"
}

// IsRedeemable mirrors the conditional update used by the ledger. It is used
// for display only; redemption itself is decided atomically by the store.
func (c AccessCode) IsRedeemable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.MaxUses != nil && c.CurrentUses >= *c.MaxUses {
		return false
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return false
	}
	return true
}

// ExtendFrom returns start shifted by the code's duration. Months are
// calendar months as normalized by [time.Time.AddDate].
func (c AccessCode) ExtendFrom(start time.Time) time.Time {
	if c.DurationType == DurationTypeMonths {
		return start.AddDate(0, c.Duration, 0)
	}
	return start.AddDate(0, 0, c.Duration)
}

// Summary renders the granted period, e.g. "30 days" or "1 month".
func (c AccessCode) Summary() string {
	unit := string(c.DurationType)
	if c.Duration == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%d %s", c.Duration, unit)
}
