// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/internal/metrics"
	"github.com/katalvlaran/crntk/linkage"
	"github.com/katalvlaran/crntk/network"
	"github.com/katalvlaran/crntk/nullspace"
	"github.com/katalvlaran/crntk/sparse"
)

// Status labels reported to the metrics recorder.
const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
	statusCancelled = "cancelled"
)

// Service runs analyses. It is safe for concurrent use.
type Service struct {
	log   logging.Logger
	rec   metrics.Recorder
	cache Cache
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logging.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder sets the metrics recorder. A nil recorder is ignored.
func WithRecorder(r metrics.Recorder) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithCache sets the conservation-law cache. Nil disables caching.
func WithCache(c Cache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

// NewService returns a Service with a no-op logger and recorder and no cache
// unless options say otherwise.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{log: logging.NewNop(), rec: metrics.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("analysis")

	return s
}

// Analyze parses text and analyses the resulting network.
func (s *Service) Analyze(ctx context.Context, text string) (*Report, error) {
	net, err := network.ParseString(text)
	if err != nil {
		s.rec.AnalysisFinished(statusFailed, 0)
		return nil, err
	}

	return s.AnalyzeNetwork(ctx, net, nil)
}

// AnalyzeNetwork analyses a parsed network. onProgress, if not nil, receives
// the remaining-constraint count of every DDM pass.
func (s *Service) AnalyzeNetwork(ctx context.Context, net *network.Network, onProgress func(remaining int)) (rep *Report, err error) {
	start := time.Now()
	defer func() {
		took := time.Since(start)
		s.rec.AnalysisFinished(status(err), took)
		if err != nil {
			s.log.Warn("analysis failed", logging.Err(err), logging.Duration("took", took))
			return
		}
		s.log.Info("analysis finished",
			logging.Int("species", len(rep.Species)),
			logging.Int("reactions", len(rep.Reactions)),
			logging.Int("laws", len(rep.Laws)),
			logging.Int("deficiency", rep.Deficiency),
			logging.Bool("cached", rep.Cached),
			logging.Duration("took", took))
	}()

	rows, species := net.Stoichiometry()

	classes, err := linkage.Classify(net.NumComplexes(), net.Reactions(), linkage.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("analysis: linkage: %w", err)
	}

	// Relations among the reaction rows: flux vectors v with Σ v_i·row_i = 0.
	rank, flux, err := nullspace.Decompose(rows, len(species), nullspace.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("analysis: null space: %w", err)
	}

	res, cached, err := s.conservationLaws(ctx, rows, species, onProgress)
	if err != nil {
		return nil, err
	}

	rep = &Report{
		Species:          species,
		Stoichiometry:    rows,
		LinkageClasses:   classes,
		Rank:             rank,
		Deficiency:       net.NumComplexes() - len(classes) - rank,
		WeaklyReversible: linkage.IsWeaklyReversible(classes),
		NullSpace:        flux,
		Stats:            res.Stats,
		Cached:           cached,
	}
	for _, c := range net.Complexes() {
		rep.Complexes = append(rep.Complexes, c.String())
	}
	for i, r := range net.Reactions() {
		rep.Reactions = append(rep.Reactions, Reaction{
			Index:      i,
			Text:       net.ReactionString(i),
			LHS:        r.LHS,
			RHS:        r.RHS,
			Reversible: net.Reversible(i),
		})
	}
	for _, ray := range res.Rays {
		rep.Laws = append(rep.Laws, Law{Ray: ray, Text: net.Law(ray)})
	}

	return rep, nil
}

// ConservationLaws returns the extreme rays of the semi-positive
// conservation laws of net, from the cache when possible. The bool reports a
// cache hit.
func (s *Service) ConservationLaws(ctx context.Context, net *network.Network, onProgress func(remaining int)) (*ddm.Result, bool, error) {
	rows, species := net.Stoichiometry()

	return s.conservationLaws(ctx, rows, species, onProgress)
}

func (s *Service) conservationLaws(ctx context.Context, rows []sparse.Vector, species []string, onProgress func(int)) (*ddm.Result, bool, error) {
	key := Key(rows, species)
	if s.cache != nil {
		res, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.log.Warn("cache get failed", logging.String("key", key), logging.Err(err))
		case ok:
			s.rec.CacheAccess(true)
			return res, true, nil
		}
		s.rec.CacheAccess(false)
	}

	res, err := ddm.Enumerate(rows, len(species),
		ddm.WithContext(ctx),
		ddm.WithOnProgress(onProgress),
		ddm.WithOnApply(func(ev ddm.Event) {
			s.rec.ConstraintOutcome(ev.Outcome.String())
		}),
	)
	if err != nil {
		return nil, false, fmt.Errorf("analysis: conservation laws: %w", err)
	}
	s.rec.Enumerated(res.Stats.Passes, len(res.Rays))
	s.log.Debug("conservation laws enumerated",
		logging.Int("rays", len(res.Rays)),
		logging.Int("passes", res.Stats.Passes),
		logging.Int("peak_rays", res.Stats.PeakRays))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res); err != nil {
			s.log.Warn("cache set failed", logging.String("key", key), logging.Err(err))
		}
	}

	return res, false, nil
}

func status(err error) string {
	switch {
	case err == nil:
		return statusSucceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return statusCancelled
	default:
		return statusFailed
	}
}
