// Package scheduler runs detached background tasks outside the request cycle.
//
// Tasks are queued by Submit and started by a single dispatcher, each in its own
// goroutine. There is no retry and no per-task cancellation: a task runs until it
// returns or until Stop cancels the scheduler's context.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull = errors.New("scheduler queue is full")
	ErrStopped   = errors.New("scheduler is stopped")
)

type Task interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	queue  chan Task
	logger *logrus.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

func New(size int, logger *logrus.Logger) *Scheduler {
	if size <= 0 {
		size = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		queue:  make(chan Task, size),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the dispatcher. Calling it twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	s.wg.Add(1)
	go s.dispatch()
}

// Submit queues t without blocking.
func (s *Scheduler) Submit(t Task) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		return ErrStopped
	}

	select {
	case s.queue <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop cancels every running task and waits for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	if dropped := len(s.queue); dropped > 0 {
		s.logger.
			WithField("method", "Scheduler.Stop").
			WithField("dropped", dropped).
			Warn("queued tasks dropped on shutdown")
	}
}

func (s *Scheduler) dispatch() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case t := <-s.queue:
			s.wg.Add(1)
			go s.run(t)
		}
	}
}

func (s *Scheduler) run(t Task) {
	defer s.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			s.fail(t, fmt.Errorf("panic: %v", r))
		}
	}()

	err := t.Run(s.ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		s.logger.
			WithField("method", "Scheduler.run").
			WithField("task", t.Name()).
			Debug("task cancelled")
	default:
		s.fail(t, err)
	}
}

func (s *Scheduler) fail(t Task, err error) {
	s.logger.
		WithField("method", "Scheduler.run").
		WithField("task", t.Name()).
		WithError(err).
		Error("task failed")
}
