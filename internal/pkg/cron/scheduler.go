package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// runTimeout bounds a single job run so a stuck job cannot wedge its
// ticker loop forever.
const runTimeout = 5 * time.Minute

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals until stopped. Jobs
// must be registered before Start; each job gets its own goroutine and
// runs once immediately on start.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	stop    chan struct{}
	done    sync.WaitGroup
	started bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	slog.Info("job registered", "name", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.done.Add(1)
		go s.loop(j)
	}
	slog.Info("scheduler started", "job_count", len(s.jobs))
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	close(s.stop)
	s.done.Wait()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.done.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.run(j)
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.run(j)
		}
	}
}

func (s *Scheduler) run(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	if err := j.fn(ctx); err != nil {
		slog.Error("job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("job completed", "name", j.name, "duration", time.Since(start))
}
