// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/redis/go-redis/v9"
)

// New returns a [RedisLimiter] when redisCfg names an address and a
// [MemoryLimiter] otherwise. On success the returned close function is
// non-nil and releases the Redis client, if any. When err is non-nil both
// the limiter and the close function are nil.
func New(ctx context.Context, redisCfg config.Redis, auth config.Auth, log *logger.Logger) (Limiter, func() error, error) {
	policy := Policy{MaxFailures: auth.MaxFailedLogins, Window: auth.FailedLoginWindow}

	if redisCfg.Addr == "" {
		log.Info().Msg("redis is not configured, using in-memory login limiter")
		return NewMemoryLimiter(policy, nil), func() error { return nil }, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("ping redis at %s: %w", redisCfg.Addr, err)
	}

	log.Info().Str("addr", redisCfg.Addr).Msg("using redis login limiter")
	return NewRedisLimiter(rdb, redisCfg.KeyPrefix, policy), rdb.Close, nil
}
