package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gtprob/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gtprob/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/gtprob/internal/engine/probability"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			probability.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			evaluator, err := graft.Dep[*probability.Evaluator](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(evaluator, telemetry, log), nil
		},
	})
}
