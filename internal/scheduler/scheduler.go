// Package scheduler запускает периодическую отправку напоминаний по активным алертам.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// ReminderDispatcher описывает контракт сервиса напоминаний для планировщика.
type ReminderDispatcher interface {
	DispatchDueReminders(ctx context.Context) (int, error)
}

// Scheduler периодически вызывает отправку плановых напоминаний.
type Scheduler struct {
	dispatcher ReminderDispatcher
	interval   time.Duration
	log        *slog.Logger

	running atomic.Bool
}

// New создаёт планировщик с заданным интервалом опроса.
func New(dispatcher ReminderDispatcher, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		interval:   interval,
		log:        log,
	}
}

// Run крутит цикл отправки напоминаний до отмены контекста.
// Первый проход выполняется сразу, далее — по тикеру.
func (s *Scheduler) Run(ctx context.Context) {
	s.running.Store(true)
	defer s.running.Store(false)

	s.log.Info("reminder scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.dispatch(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.dispatch(ctx)
		}
	}
}

// IsRunning сообщает, работает ли цикл планировщика. Используется проверкой здоровья.
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

func (s *Scheduler) dispatch(ctx context.Context) {
	sent, err := s.dispatcher.DispatchDueReminders(ctx)
	if err != nil {
		s.log.Error("reminder dispatch failed", slog.Any("err", err))
	}
	if sent > 0 {
		s.log.Info("reminders dispatched", slog.Int("sent", sent))
	}
}
