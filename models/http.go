// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreateAccessCodeRequest is the admin payload for a new access code.
type CreateAccessCodeRequest struct {
	Code         string       `json:"code"`
	Description  string       `json:"description,omitempty"`
	Duration     int          `json:"duration"`
	DurationType DurationType `json:"duration_type"`
	MaxUses      *int         `json:"max_uses,omitempty"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
}

// ToAccessCode converts the request into an active [AccessCode] owned by
// createdBy.
func (r CreateAccessCodeRequest) ToAccessCode(createdBy *int64) AccessCode {
	return AccessCode{
		Code:         r.Code,
		Description:  r.Description,
		Duration:     r.Duration,
		DurationType: r.DurationType,
		MaxUses:      r.MaxUses,
		IsActive:     true,
		CreatedBy:    createdBy,
		ExpiresAt:    r.ExpiresAt,
	}
}

// SetSubscriptionRequest sets or clears (nil) a user's subscription expiry.
type SetSubscriptionRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}
