package probability

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gtprob/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gtprob/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gtprob/internal/adapters/store"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gtprob/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator Graft node.
const NodeID graft.ID = "engine.probability"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Evaluator, error) {
			stores, err := graft.Dep[ports.StoreFactory](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewEvaluator(stores, m, log), nil
		},
	})
}
