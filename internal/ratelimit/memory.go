// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryLimiter is an in-process [Limiter].
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	policy  Policy
	now     func() time.Time
}

// NewMemoryLimiter builds an empty limiter. now may be nil, in which case
// time.Now is used.
func NewMemoryLimiter(policy Policy, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		entries: make(map[string]memoryEntry),
		policy:  policy,
		now:     now,
	}
}

// IsLimited implements [Limiter].
func (l *MemoryLimiter) IsLimited(_ context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.live(id)
	return ok && entry.count >= l.policy.MaxFailures, nil
}

// RecordFailure implements [Limiter].
func (l *MemoryLimiter) RecordFailure(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, _ := l.live(id)
	entry.count++
	entry.expiresAt = l.now().Add(l.policy.Window)
	l.entries[id] = entry
	return nil
}

// Clear implements [Limiter].
func (l *MemoryLimiter) Clear(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, id)
	return nil
}

// Purge drops expired counters and returns how many were removed.
func (l *MemoryLimiter) Purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, entry := range l.entries {
		if !entry.expiresAt.After(now) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

// live returns the unexpired entry for id. The caller holds l.mu.
func (l *MemoryLimiter) live(id string) (memoryEntry, bool) {
	entry, ok := l.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !entry.expiresAt.After(l.now()) {
		delete(l.entries, id)
		return memoryEntry{}, false
	}
	return entry, true
}
