package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gtprob/internal/core/ports"
)

// NodeID is the unique identifier for the probability store factory node.
const NodeID graft.ID = "adapter.probability_store"

func init() {
	graft.Register(graft.Node[ports.StoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
