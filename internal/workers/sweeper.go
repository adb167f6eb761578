package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/metrics"
	"github.com/MKhiriev/go-leave-desk/internal/store"
)

const defaultSweepInterval = time.Hour

// purger is implemented by in-process rate limiters that keep state which
// has to be dropped explicitly. Redis expires its keys by itself.
type purger interface {
	Purge() int
}

// Sweeper deletes expired sessions, pending verifications and reset
// requests. Reads check expiry on their own, so sweeping only bounds table
// growth.
type Sweeper struct {
	pending  store.PendingVerificationRepository
	sessions store.SessionRepository
	resets   store.PasswordResetRepository

	// limiter is optional.
	limiter purger

	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewSweeper builds a sweeper over storages. limiter may be nil or any value;
// it is purged on every pass when it implements Purge() int. A non-positive
// interval falls back to one hour.
func NewSweeper(storages *store.Storages, limiter any, interval time.Duration, logger *logger.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	s := &Sweeper{
		pending:  storages.PendingVerificationRepository,
		sessions: storages.SessionRepository,
		resets:   storages.PasswordResetRepository,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
	if p, ok := limiter.(purger); ok {
		s.limiter = p
	}
	return s
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
// Failed passes are logged and do not stop the worker.
func (s *Sweeper) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("sweeper started")

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		if err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*Sweeper.Run").Msg("sweep pass failed")
		}

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("sweeper stopped")
			return nil
		case <-t.C:
		}
	}
}

// Sweep runs a single pass. Every table is attempted even when an earlier
// one fails; the errors are joined.
func (s *Sweeper) Sweep(ctx context.Context) error {
	now := s.now()

	steps := []struct {
		table string
		run   func(context.Context, time.Time) (int64, error)
	}{
		{"sessions", s.sessions.DeleteExpiredSessions},
		{"pending_verifications", s.pending.DeleteExpiredPendingVerifications},
		{"password_resets", s.resets.DeleteExpiredPasswordResets},
	}

	var errs []error
	for _, step := range steps {
		n, err := step.run(ctx, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		metrics.RecordSwept(step.table, n)
		if n > 0 {
			s.logger.Debug().Str("table", step.table).Int64("deleted", n).Msg("expired rows swept")
		}
	}

	if s.limiter != nil {
		if n := s.limiter.Purge(); n > 0 {
			metrics.RecordSwept("rate_limit_entries", int64(n))
		}
	}

	return errors.Join(errs...)
}
