package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alerting-platform/internal/scheduler"
)

type countingDispatcher struct {
	calls atomic.Int32
}

func (d *countingDispatcher) DispatchDueReminders(ctx context.Context) (int, error) {
	d.calls.Add(1)
	return 0, nil
}

func TestScheduler_RunDispatchesAndStops(t *testing.T) {
	dispatcher := &countingDispatcher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := scheduler.New(dispatcher, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Первый проход выполняется сразу, дальше по тикеру
	assert.Eventually(t, func() bool {
		return dispatcher.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.IsRunning())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}
	assert.False(t, s.IsRunning())
}

type failingDispatcher struct {
	calls atomic.Int32
}

func (d *failingDispatcher) DispatchDueReminders(ctx context.Context) (int, error) {
	d.calls.Add(1)
	return 0, context.DeadlineExceeded
}

func TestScheduler_KeepsRunningAfterDispatchError(t *testing.T) {
	dispatcher := &failingDispatcher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := scheduler.New(dispatcher, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	// Ошибка одного прохода не останавливает цикл
	assert.Eventually(t, func() bool {
		return dispatcher.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.IsRunning())
}
