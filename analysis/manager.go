// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/internal/metrics"
	"github.com/katalvlaran/crntk/network"
)

var (
	// ErrJobNotFound is returned for an unknown job id.
	ErrJobNotFound = errors.New("analysis: job not found")
	// ErrJobFinished is returned when cancelling a job that already ended.
	ErrJobFinished = errors.New("analysis: job already finished")
	// ErrManagerClosed is returned by Submit after Close.
	ErrManagerClosed = errors.New("analysis: manager closed")
)

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// Done reports whether s is terminal.
func (s JobStatus) Done() bool {
	return s == JobSucceeded || s == JobFailed || s == JobCancelled
}

// Job is a snapshot of a background analysis.
type Job struct {
	ID     string    `json:"id" yaml:"id"`
	Status JobStatus `json:"status" yaml:"status"`
	// Remaining is the number of constraints the current DDM pass examines;
	// Total is the number of reactions.
	Remaining int        `json:"remaining" yaml:"remaining"`
	Total     int        `json:"total" yaml:"total"`
	Report    *Report    `json:"report,omitempty" yaml:"report,omitempty"`
	Error     string     `json:"error,omitempty" yaml:"error,omitempty"`
	Submitted time.Time  `json:"submitted" yaml:"submitted"`
	Started   *time.Time `json:"started,omitempty" yaml:"started,omitempty"`
	Finished  *time.Time `json:"finished,omitempty" yaml:"finished,omitempty"`
}

type job struct {
	Job
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager runs analyses in the background. Jobs are kept until Close.
type Manager struct {
	svc *Service
	log logging.Logger
	rec metrics.Recorder

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	jobs   map[string]*job
	order  []string
	closed bool
}

// NewManager returns a Manager running analyses on svc.
func NewManager(svc *Service) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		svc:    svc,
		log:    svc.log.Named("jobs"),
		rec:    svc.rec,
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(map[string]*job),
	}
}

// Submit parses text and starts analysing it. Parse errors are returned
// directly and create no job.
func (m *Manager) Submit(text string) (*Job, error) {
	net, err := network.ParseString(text)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrManagerClosed
	}

	ctx, cancel := context.WithCancel(m.ctx)
	j := &job{
		Job: Job{
			ID:        uuid.New().String(),
			Status:    JobPending,
			Remaining: net.NumReactions(),
			Total:     net.NumReactions(),
			Submitted: time.Now().UTC(),
		},
		cancel: cancel,
		done:   make(chan struct{}),
	}
	m.jobs[j.ID] = j
	m.order = append(m.order, j.ID)
	m.rec.JobsActive(1)
	m.log.Info("job submitted", logging.String("job", j.ID), logging.Int("reactions", j.Total))

	m.wg.Add(1)
	go m.run(ctx, j, net)

	snap := j.Job
	return &snap, nil
}

func (m *Manager) run(ctx context.Context, j *job, net *network.Network) {
	defer m.wg.Done()
	defer close(j.done)
	defer j.cancel()
	defer m.rec.JobsActive(-1)

	m.update(j, func(j *job) {
		now := time.Now().UTC()
		j.Status = JobRunning
		j.Started = &now
	})

	rep, err := m.svc.AnalyzeNetwork(ctx, net, func(remaining int) {
		m.update(j, func(j *job) { j.Remaining = remaining })
	})

	var final JobStatus
	m.update(j, func(j *job) {
		now := time.Now().UTC()
		j.Finished = &now
		switch {
		case err == nil:
			j.Status = JobSucceeded
			j.Remaining = 0
			j.Report = rep
		case ctx.Err() != nil:
			j.Status = JobCancelled
		default:
			j.Status = JobFailed
			j.Error = err.Error()
		}
		final = j.Status
	})
	m.log.Info("job finished", logging.String("job", j.ID), logging.String("status", string(final)))
}

func (m *Manager) update(j *job, fn func(*job)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(j)
}

// Get returns a snapshot of job id.
func (m *Manager) Get(id string) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	j, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	snap := j.Job

	return &snap, nil
}

// Wait blocks until job id ends or ctx is done, then returns its snapshot.
func (m *Manager) Wait(ctx context.Context, id string) (*Job, error) {
	m.mu.Lock()
	j, ok := m.jobs[id]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	select {
	case <-j.done:
		return m.Get(id)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel aborts job id. The job ends as cancelled without a report.
func (m *Manager) Cancel(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	j, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if j.Status.Done() {
		return fmt.Errorf("%w: %s", ErrJobFinished, id)
	}
	j.cancel()
	m.log.Info("job cancel requested", logging.String("job", id))

	return nil
}

// List returns snapshots of every job in submission order. Reports are
// omitted; fetch a single job for its report.
func (m *Manager) List() []*Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Job, 0, len(m.order))
	for _, id := range m.order {
		snap := m.jobs[id].Job
		snap.Report = nil
		out = append(out, &snap)
	}

	return out
}

// Close cancels running jobs and waits for them to end. Further submissions
// fail with ErrManagerClosed.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
}
