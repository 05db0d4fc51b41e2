package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/digest_runner.go -pkg mocks -skip-ensure -fmt goimports . DigestRunner

// DigestRunner executes one collection and digest cycle
type DigestRunner interface {
	RunDigest(ctx context.Context) (string, error)
}

// Scheduler triggers digest runs on a fixed interval
type Scheduler struct {
	runner   DigestRunner
	interval time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewScheduler creates a scheduler, zero interval defaults to daily
func NewScheduler(runner DigestRunner, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{runner: runner, interval: interval}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.digestWorker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// digestWorker periodically runs a full collection and digest cycle
func (s *Scheduler) digestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.runDigest(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runDigest(ctx)
		}
	}
}

func (s *Scheduler) runDigest(ctx context.Context) {
	digest, err := s.runner.RunDigest(ctx)
	if err != nil {
		if ctx.Err() == nil {
			lgr.Printf("[ERROR] digest run failed: %v", err)
		}
		return
	}
	lgr.Printf("[INFO] digest run completed, %d chars", len(digest))
}
