// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
)

// Storages aggregates every repository over one database connection.
type Storages struct {
	DB *DB

	UserRepository                UserRepository
	PendingVerificationRepository PendingVerificationRepository
	SessionRepository             SessionRepository
	AccessCodeRepository          AccessCodeRepository
	PasswordResetRepository       PasswordResetRepository
}

// Connect opens the database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                            db,
		UserRepository:                NewUserRepository(db, log),
		PendingVerificationRepository: NewPendingVerificationRepository(db, log),
		SessionRepository:             NewSessionRepository(db, log),
		AccessCodeRepository:          NewAccessCodeRepository(db, log),
		PasswordResetRepository:       NewPasswordResetRepository(db, log),
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
