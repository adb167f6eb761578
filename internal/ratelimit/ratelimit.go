// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit counts failed login attempts per identifier.
//
// A counter expires FailedLoginWindow after the most recent failure: every
// recorded failure refreshes the window. An identifier is limited once its
// counter reaches the configured threshold.
//
// Two backends are provided. [RedisLimiter] shares state between instances;
// [MemoryLimiter] keeps it in process for single-node deployments and tests.
package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -source=ratelimit.go -destination=../mock/ratelimit_mock.go -package=mock

// Limiter tracks failed attempts per identifier.
type Limiter interface {
	// IsLimited reports whether id has reached the failure threshold.
	IsLimited(ctx context.Context, id string) (bool, error)
	// RecordFailure counts one failure for id and refreshes its window.
	RecordFailure(ctx context.Context, id string) error
	// Clear forgets every failure of id.
	Clear(ctx context.Context, id string) error
}

// Policy is the threshold and window shared by every backend.
type Policy struct {
	MaxFailures int
	Window      time.Duration
}
