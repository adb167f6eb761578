// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter keeps one counter per identifier under
// "<prefix>:login:<id>".
type RedisLimiter struct {
	rdb    redis.UniversalClient
	prefix string
	policy Policy
}

// NewRedisLimiter builds a limiter over rdb.
func NewRedisLimiter(rdb redis.UniversalClient, prefix string, policy Policy) *RedisLimiter {
	if prefix == "" {
		prefix = "leave-desk"
	}
	return &RedisLimiter{
		rdb:    rdb,
		prefix: prefix,
		policy: policy,
	}
}

func (l *RedisLimiter) key(id string) string {
	return l.prefix + ":login:" + id
}

// IsLimited implements [Limiter].
func (l *RedisLimiter) IsLimited(ctx context.Context, id string) (bool, error) {
	count, err := l.rdb.Get(ctx, l.key(id)).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ratelimit get: %w", err)
	}
	return count >= l.policy.MaxFailures, nil
}

// RecordFailure implements [Limiter] with INCR and PEXPIRE in one pipeline.
func (l *RedisLimiter) RecordFailure(ctx context.Context, id string) error {
	key := l.key(id)
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.PExpire(ctx, key, l.policy.Window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("ratelimit record: %w", err)
	}
	return nil
}

// Clear implements [Limiter].
func (l *RedisLimiter) Clear(ctx context.Context, id string) error {
	if err := l.rdb.Del(ctx, l.key(id)).Err(); err != nil {
		return fmt.Errorf("ratelimit clear: %w", err)
	}
	return nil
}
