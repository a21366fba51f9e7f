// Package scheduler evaluates batches of topologies with bounded parallelism.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs the evaluations of a batch. Identical topologies are
// evaluated once and the later occurrences are reported as cached.
type Scheduler struct {
	evaluator ports.Evaluator
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[string]domain.VertexStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(evaluator ports.Evaluator, telemetry ports.Telemetry, logger ports.Logger) *Scheduler {
	return &Scheduler{
		evaluator: evaluator,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[string]domain.VertexStatus),
	}
}

func (s *Scheduler) initStatuses(jobs []*job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = make(map[string]domain.VertexStatus, len(jobs))
	for _, j := range jobs {
		s.status[j.name] = domain.VertexStatusPending
	}
}

func (s *Scheduler) updateStatus(name string, status domain.VertexStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

// Status returns the status of the named topology in the current run.
func (s *Scheduler) Status(name string) domain.VertexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

type job struct {
	name     string
	topology domain.Topology
	p        float64
	err      error
}

// Run evaluates topologies with at most parallelism evaluations in flight.
// The results are in input order. A failed evaluation does not stop the
// others; all failures are joined into the returned error. Cancelling ctx
// stops scheduling new evaluations and the unscheduled ones stay pending.
func (s *Scheduler) Run(
	ctx context.Context,
	topologies []domain.Topology,
	theta float64,
	parallelism int,
) ([]domain.Result, error) {
	return s.RunWithCache(ctx, topologies, theta, parallelism, nil)
}

// RunWithCache is Run backed by a persistent result cache. Topologies found
// in cache are reported as cached without being evaluated, and new results
// are written back. A nil cache disables the lookup.
func (s *Scheduler) RunWithCache(
	ctx context.Context,
	topologies []domain.Topology,
	theta float64,
	parallelism int,
	cache ports.ResultCache,
) ([]domain.Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	jobs, index := plan(topologies)
	s.initStatuses(jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s.execute(gctx, j, theta, cache)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]domain.Result, len(topologies))
	seen := make([]bool, len(jobs))
	var errs error
	for i, t := range topologies {
		j := jobs[index[i]]
		results[i] = domain.Result{
			Topology:    t,
			Theta:       theta,
			Probability: j.p,
			Complexity:  t.Complexity(),
			Status:      s.Status(j.name),
		}
		if seen[index[i]] && (results[i].Status == domain.VertexStatusCompleted || results[i].Status == domain.VertexStatusCached) {
			results[i].Status = domain.VertexStatusCached
			s.recordCached(ctx, j.name)
		}
		if j.err != nil && !seen[index[i]] {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(j.err, domain.ErrEvaluationFailed.Error()), "topology", j.name))
		}
		seen[index[i]] = true
	}

	if err := ctx.Err(); err != nil {
		errs = errors.Join(errs, err)
	}
	return results, errs
}

func (s *Scheduler) execute(ctx context.Context, j *job, theta float64, cache ports.ResultCache) {
	if ctx.Err() != nil {
		return
	}
	s.updateStatus(j.name, domain.VertexStatusRunning)

	_, vertex := s.telemetry.Record(ctx, j.name)
	if s.lookup(ctx, j, theta, cache) {
		s.updateStatus(j.name, domain.VertexStatusCached)
		vertex.Cached()
		vertex.Complete(nil)
		s.logger.Debug("result cache hit", "topology", j.name)
		return
	}

	j.p, j.err = s.evaluator.Calculate(j.topology, theta)
	if j.err != nil {
		vertex.Log(domain.LogLevelError, j.err.Error())
		s.updateStatus(j.name, domain.VertexStatusFailed)
	} else {
		s.updateStatus(j.name, domain.VertexStatusCompleted)
		s.store(ctx, j, theta, cache)
	}
	vertex.Complete(j.err)

	s.logger.Debug("scheduled evaluation finished", "topology", j.name, "status", string(s.Status(j.name)))
}

// lookup fills j from cache. Cache failures are logged and treated as misses.
func (s *Scheduler) lookup(ctx context.Context, j *job, theta float64, cache ports.ResultCache) bool {
	if cache == nil {
		return false
	}
	p, ok, err := cache.Get(ctx, j.topology, theta)
	if err != nil {
		s.logger.Warn("result cache lookup failed: " + err.Error())
		return false
	}
	if ok {
		j.p = p
	}
	return ok
}

func (s *Scheduler) store(ctx context.Context, j *job, theta float64, cache ports.ResultCache) {
	if cache == nil {
		return
	}
	if err := cache.Put(ctx, j.topology, theta, j.p); err != nil {
		s.logger.Warn("result cache write failed: " + err.Error())
	}
}

func (s *Scheduler) recordCached(ctx context.Context, name string) {
	_, vertex := s.telemetry.Record(ctx, name)
	vertex.Cached()
	vertex.Complete(nil)
}

// plan groups identical topologies into one job each. index maps every
// input position to its job.
func plan(topologies []domain.Topology) ([]*job, []int) {
	var jobs []*job
	index := make([]int, len(topologies))
	buckets := make(map[uint64][]int)

	for i, t := range topologies {
		fp := t.Fingerprint()
		found := -1
		for _, k := range buckets[fp] {
			if jobs[k].topology.Equal(t) {
				found = k
				break
			}
		}
		if found < 0 {
			found = len(jobs)
			jobs = append(jobs, &job{name: t.String(), topology: t})
			buckets[fp] = append(buckets[fp], found)
		}
		index[i] = found
	}
	return jobs, index
}
