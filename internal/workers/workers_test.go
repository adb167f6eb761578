// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubWorker counts Run calls and blocks until ctx is done unless err is set.
type stubWorker struct {
	runs atomic.Int32
	err  error
}

func (s *stubWorker) Run(ctx context.Context) error {
	s.runs.Add(1)
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &stubWorker{}, &stubWorker{}, &stubWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, ws.Run(ctx))
	for i, w := range []*stubWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FirstErrorStopsTheRest(t *testing.T) {
	boom := errors.New("boom")
	blocking := &stubWorker{}
	ws := NewWorkers(blocking, &stubWorker{err: boom})

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after a failure")
	}
	assert.Equal(t, int32(1), blocking.runs.Load())
}
