package analysis_test

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/sparse"
)

const michaelisMenten = "E + S <-> ES -> E + P"

func v(pairs ...int64) sparse.Vector {
	out := make(sparse.Vector, 0, len(pairs)/2)
	for k := 0; k+1 < len(pairs); k += 2 {
		out = append(out, sparse.Entry{Index: int(pairs[k]), Value: pairs[k+1]})
	}

	return out
}

// recorder counts metric calls.
type recorder struct {
	mu       sync.Mutex
	statuses []string
	outcomes map[string]int
	hits     int
	misses   int
	active   int
	rays     []int
}

func newRecorder() *recorder { return &recorder{outcomes: map[string]int{}} }

func (r *recorder) AnalysisFinished(status string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recorder) ConstraintOutcome(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[outcome]++
}

func (r *recorder) Enumerated(_, rays int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rays = append(r.rays, rays)
}

func (r *recorder) CacheAccess(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func (r *recorder) JobsActive(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active += delta
}

func (r *recorder) activeJobs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// blockingCache parks Get until the caller's context ends, so a job stays
// running until it is cancelled.
type blockingCache struct {
	entered chan struct{}
	once    sync.Once
}

func newBlockingCache() *blockingCache { return &blockingCache{entered: make(chan struct{})} }

func (c *blockingCache) Get(ctx context.Context, _ string) (*ddm.Result, bool, error) {
	c.once.Do(func() { close(c.entered) })
	<-ctx.Done()
	return nil, false, ctx.Err()
}

func (c *blockingCache) Set(context.Context, string, *ddm.Result) error { return nil }

// failingCache errors on every call.
type failingCache struct{ err error }

func (c failingCache) Get(context.Context, string) (*ddm.Result, bool, error) { return nil, false, c.err }
func (c failingCache) Set(context.Context, string, *ddm.Result) error         { return c.err }
