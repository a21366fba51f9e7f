package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gtprob/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gtprob/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gtprob/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/gtprob/internal/adapters/resultcache"        //nolint:depguard // Wired in app layer
	"go.trai.ch/gtprob/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/gtprob/internal/engine/probability"
	"go.trai.ch/gtprob/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			probability.NodeID,
			scheduler.NodeID,
			logger.NodeID,
			metrics.NodeID,
			progrock.NodeID,
			resultcache.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	evaluator, err := graft.Dep[*probability.Evaluator](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	cacheFactory, err := graft.Dep[ports.ResultCacheFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, evaluator, sched, log, m, telemetry, cacheFactory), nil
}
