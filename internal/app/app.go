// Package app implements the application layer for gtprob.
package app

import (
	"context"
	"io"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/gtprob/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	evaluator    ports.Evaluator
	scheduler    *scheduler.Scheduler
	logger       ports.Logger
	metrics      ports.Metrics
	telemetry    ports.Telemetry
	cacheFactory ports.ResultCacheFactory
	teaOptions   []tea.ProgramOption
	progressOut  io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	evaluator ports.Evaluator,
	sched *scheduler.Scheduler,
	log ports.Logger,
	metrics ports.Metrics,
	telemetry ports.Telemetry,
	cacheFactory ports.ResultCacheFactory,
) *App {
	return &App{
		configLoader: loader,
		evaluator:    evaluator,
		scheduler:    sched,
		logger:       log,
		metrics:      metrics,
		telemetry:    telemetry,
		cacheFactory: cacheFactory,
		progressOut:  os.Stderr,
	}
}

// Options carries the command line overrides of the configuration file.
// Nil fields keep the configured value.
type Options struct {
	ConfigPath    string
	Theta         *float64
	MaxComplexity *uint64
	Parallelism   *int
	Verbose       bool
	JSONLogs      bool
	CacheDir      *string
	// NoCache skips the persistent result cache even when one is configured.
	NoCache bool
	// Progress draws a live progress display while a batch is evaluated.
	Progress bool
	// Compare recomputes every decomposed probability with its own store.
	Compare bool
}

// Evaluate computes the probability of every input topology. Results are
// returned in input order, also when some evaluations fail.
func (a *App) Evaluate(ctx context.Context, inputs []string, opts Options) ([]domain.Result, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoTopologies
	}

	// 1. Resolve settings
	settings, err := a.Settings(opts)
	if err != nil {
		return nil, err
	}

	// 2. Validate inputs
	topologies := make([]domain.Topology, len(inputs))
	for i, input := range inputs {
		t, err := a.admit(input, settings)
		if err != nil {
			return nil, err
		}
		topologies[i] = t
	}

	// 3. Open the result cache
	var cache ports.ResultCache
	if settings.CacheDir != "" && !opts.NoCache {
		cache, err = a.cacheFactory.Open(settings.CacheDir)
		if err != nil {
			return nil, err
		}
		defer func() {
			if cerr := cache.Close(); cerr != nil {
				a.logger.Warn("failed to close result cache: " + cerr.Error())
			}
		}()
	}

	// 4. Run the scheduler
	stop := func() {}
	if opts.Progress {
		stop = a.startProgress(ctx, len(topologies))
	}
	results, err := a.scheduler.RunWithCache(ctx, topologies, settings.Theta, settings.Parallelism, cache)
	stop()
	for i := range results {
		results[i].Input = inputs[i]
	}
	if err != nil {
		return results, zerr.Wrap(err, "batch evaluation failed")
	}
	return results, nil
}

// Decompose evaluates one topology and reports every term of its first
// decomposition step.
func (a *App) Decompose(ctx context.Context, input string, opts Options) (domain.Decomposition, error) {
	settings, err := a.Settings(opts)
	if err != nil {
		return domain.Decomposition{}, err
	}

	t, err := a.admit(input, settings)
	if err != nil {
		return domain.Decomposition{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Decomposition{}, err
	}

	d, err := a.evaluator.Decompose(t, settings.Theta)
	if err != nil || !opts.Compare {
		return d, err
	}
	return a.compare(d)
}

// compare recomputes the probability of d and of each of its terms through
// separate Calculate calls, so no memoized value is shared with d.
func (a *App) compare(d domain.Decomposition) (domain.Decomposition, error) {
	ref, err := a.evaluator.Calculate(d.Topology, d.Theta)
	if err != nil {
		return d, zerr.Wrap(err, "comparison failed")
	}
	d.Reference = ref

	d.Terms = slices.Clone(d.Terms)
	for i := range d.Terms {
		term := &d.Terms[i]
		if term.Reference, err = a.evaluator.Calculate(term.Topology, d.Theta); err != nil {
			return d, zerr.Wrap(err, "comparison failed")
		}
	}
	d.Compared = true

	a.logger.Debug("compared decomposition",
		"topology", d.Topology.String(),
		"probability", d.Probability,
		"reference", ref,
		"difference", d.Difference(),
	)
	return d, nil
}

// Inspect reports the structural properties of a topology without
// evaluating it. Non-binary topologies are accepted.
func (a *App) Inspect(input string, opts Options) (domain.Inspection, error) {
	settings, err := a.Settings(opts)
	if err != nil {
		return domain.Inspection{}, err
	}

	t, err := domain.ParseTopology(input)
	if err != nil {
		return domain.Inspection{}, err
	}

	in := domain.Inspection{
		Topology:    t,
		Vector:      t.Values(),
		Size:        t.Size(),
		Lineages:    t.Lineages(),
		Leaves:      t.Leaves(),
		Binary:      t.IsBinary(),
		Simple:      t.IsSimple(),
		Complexity:  t.Complexity(),
		Fingerprint: t.Fingerprint(),
		Theta:       settings.Theta,
		Denominator: t.Denominator(settings.Theta),
		Simpler:     t.SimplerTopologies(),
	}
	if in.Binary {
		in.LabeledHistories = t.NumberOfLabeledHistories()
		in.Symmetries = t.NumberOfSymmetries()
		left, right := t.RootBranches()
		in.RootBranches = []domain.Topology{left, right}
	}
	return in, nil
}

// Stats returns the evaluator counters recorded so far.
func (a *App) Stats() domain.Stats {
	return a.metrics.Snapshot()
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// admit parses input and checks it can be evaluated under settings.
func (a *App) admit(input string, settings domain.Settings) (domain.Topology, error) {
	t, err := domain.ParseTopology(input)
	if err != nil {
		return domain.Topology{}, err
	}
	if !t.IsBinary() {
		return domain.Topology{}, zerr.With(domain.ErrNonBinaryTopology, "topology", t.String())
	}

	if err := t.CheckComplexity(settings.MaxComplexity); err != nil {
		return domain.Topology{}, err
	}
	return t, nil
}
