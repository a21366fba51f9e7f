package resultcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gtprob/internal/adapters/logger"
	"go.trai.ch/gtprob/internal/core/ports"
)

// NodeID is the unique identifier for the result cache factory node.
const NodeID graft.ID = "adapter.result_cache"

func init() {
	graft.Register(graft.Node[ports.ResultCacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ResultCacheFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
