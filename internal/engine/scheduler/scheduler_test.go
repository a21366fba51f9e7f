package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gtprob/internal/adapters/telemetry"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports/mocks"
	"go.trai.ch/gtprob/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func topologies(newicks ...string) []domain.Topology {
	out := make([]domain.Topology, len(newicks))
	for i, s := range newicks {
		out[i] = domain.MustParseTopology(s)
	}
	return out
}

func newLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func TestScheduler_Run_InputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().Calculate(gomock.Any(), 1.0).DoAndReturn(func(t domain.Topology, _ float64) (float64, error) {
		return 1 / float64(t.Lineages()), nil
	}).Times(3)

	s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), newLogger(ctrl))
	results, err := s.Run(context.Background(), topologies("(1,1)", "(1,2)", "(2,2)"), 1, 2)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "(1,1)", results[0].Topology.String())
	assert.InDelta(t, 0.5, results[0].Probability, 1e-12)
	assert.Equal(t, "(1,2)", results[1].Topology.String())
	assert.InDelta(t, 1.0/3, results[1].Probability, 1e-12)
	assert.Equal(t, "(2,2)", results[2].Topology.String())
	assert.InDelta(t, 0.25, results[2].Probability, 1e-12)

	for _, r := range results {
		assert.Equal(t, domain.VertexStatusCompleted, r.Status)
		assert.Equal(t, 1.0, r.Theta)
		assert.Equal(t, r.Topology.Complexity(), r.Complexity)
	}
}

func TestScheduler_Run_Duplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(0.25, nil).Times(2)

	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	tel.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ string) (context.Context, *mocks.MockVertex) {
		return ctx, vertex
	}).Times(4)
	vertex.EXPECT().Complete(nil).Times(4)
	vertex.EXPECT().Cached().Times(2)

	s := scheduler.NewScheduler(evaluator, tel, newLogger(ctrl))
	results, err := s.Run(context.Background(), topologies("(1,1)", "(1,2)", "(1,1)", "(1,1)"), 1, 4)
	require.NoError(t, err)

	assert.Equal(t, domain.VertexStatusCompleted, results[0].Status)
	assert.Equal(t, domain.VertexStatusCompleted, results[1].Status)
	assert.Equal(t, domain.VertexStatusCached, results[2].Status)
	assert.Equal(t, domain.VertexStatusCached, results[3].Status)
	assert.Equal(t, results[0].Probability, results[2].Probability)
}

func TestScheduler_Run_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(func(t domain.Topology, _ float64) (float64, error) {
		if t.String() == "(1,2)" {
			return 0, domain.ErrProbabilityUnderflow
		}
		return 0.25, nil
	}).Times(2)

	s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), newLogger(ctrl))
	results, err := s.Run(context.Background(), topologies("(1,1)", "(1,2)", "(1,2)"), 1, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEvaluationFailed.Error())
	assert.ErrorContains(t, err, domain.ErrProbabilityUnderflow.Error())
	assert.ErrorIs(t, err, domain.ErrProbabilityUnderflow)

	assert.Equal(t, domain.VertexStatusCompleted, results[0].Status)
	assert.Equal(t, domain.VertexStatusFailed, results[1].Status)
	assert.Equal(t, domain.VertexStatusFailed, results[2].Status)

	statuses := s.GetStatusMap()
	assert.Equal(t, map[string]domain.VertexStatus{
		"(1,1)": domain.VertexStatusCompleted,
		"(1,2)": domain.VertexStatusFailed,
	}, statuses)
}

func TestScheduler_Run_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), newLogger(ctrl))
	results, err := s.Run(ctx, topologies("(1,1)", "(1,2)"), 1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	for _, r := range results {
		assert.Equal(t, domain.VertexStatusPending, r.Status)
		assert.Zero(t, r.Probability)
	}
}

func TestScheduler_Run_Parallelism(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		evaluator := mocks.NewMockEvaluator(ctrl)

		var inFlight, peak atomic.Int32
		release := make(chan struct{})
		evaluator.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(func(domain.Topology, float64) (float64, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			inFlight.Add(-1)
			return 0.5, nil
		}).Times(4)

		s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), newLogger(ctrl))

		var (
			wg      sync.WaitGroup
			results []domain.Result
			err     error
		)
		wg.Go(func() {
			results, err = s.Run(context.Background(), topologies("(1,1)", "(1,2)", "(2,2)", "(1,3)"), 1, 2)
		})

		synctest.Wait()
		assert.Equal(t, int32(2), inFlight.Load())
		running := 0
		for _, status := range s.GetStatusMap() {
			if status == domain.VertexStatusRunning {
				running++
			}
		}
		assert.Equal(t, 2, running)

		close(release)
		wg.Wait()

		require.NoError(t, err)
		assert.Len(t, results, 4)
		assert.Equal(t, int32(2), peak.Load())
	})
}

func TestScheduler_Run_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := scheduler.NewScheduler(mocks.NewMockEvaluator(ctrl), telemetry.NewNoOp(), newLogger(ctrl))

	results, err := s.Run(context.Background(), nil, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScheduler_RunWithCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	cache := mocks.NewMockResultCache(ctrl)

	hit := domain.MustParseTopology("(1,1)")
	miss := domain.MustParseTopology("(1,2)")

	cache.EXPECT().Get(gomock.Any(), hit, 1.0).Return(0.25, true, nil)
	cache.EXPECT().Get(gomock.Any(), miss, 1.0).Return(0.0, false, nil)
	evaluator.EXPECT().Calculate(miss, 1.0).Return(5.0/54, nil)
	cache.EXPECT().Put(gomock.Any(), miss, 1.0, 5.0/54).Return(nil)

	s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), newLogger(ctrl))
	results, err := s.RunWithCache(context.Background(), topologies("(1,1)", "(1,2)", "(1,1)"), 1, 2, cache)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, domain.VertexStatusCached, results[0].Status)
	assert.InDelta(t, 0.25, results[0].Probability, 0)
	assert.Equal(t, domain.VertexStatusCompleted, results[1].Status)
	assert.InDelta(t, 5.0/54, results[1].Probability, 0)
	assert.Equal(t, domain.VertexStatusCached, results[2].Status)
	assert.InDelta(t, 0.25, results[2].Probability, 0)
}

func TestScheduler_RunWithCache_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	cache := mocks.NewMockResultCache(ctrl)
	log := newLogger(ctrl)

	topo := domain.MustParseTopology("(2,2)")
	cache.EXPECT().Get(gomock.Any(), topo, 1.0).Return(0.0, false, errors.New("disk on fire"))
	evaluator.EXPECT().Calculate(topo, 1.0).Return(5.0/216, nil)
	cache.EXPECT().Put(gomock.Any(), topo, 1.0, 5.0/216).Return(errors.New("disk full"))
	log.EXPECT().Warn("result cache lookup failed: disk on fire")
	log.EXPECT().Warn("result cache write failed: disk full")

	s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), log)
	results, err := s.RunWithCache(context.Background(), topologies("(2,2)"), 1, 1, cache)
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCompleted, results[0].Status)
	assert.InDelta(t, 5.0/216, results[0].Probability, 0)
}

func TestScheduler_RunWithCache_FailedNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	cache := mocks.NewMockResultCache(ctrl)

	topo := domain.MustParseTopology("(1,1)")
	cache.EXPECT().Get(gomock.Any(), topo, 1.0).Return(0.0, false, nil)
	evaluator.EXPECT().Calculate(topo, 1.0).Return(0.0, domain.ErrProbabilityUnderflow)

	s := scheduler.NewScheduler(evaluator, telemetry.NewNoOp(), newLogger(ctrl))
	results, err := s.RunWithCache(context.Background(), topologies("(1,1)"), 1, 1, cache)
	require.ErrorIs(t, err, domain.ErrProbabilityUnderflow)
	assert.Equal(t, domain.VertexStatusFailed, results[0].Status)
}
