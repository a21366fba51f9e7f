package scheduler

import (
	"maps"

	"go.trai.ch/gtprob/internal/core/domain"
)

// GetStatusMap returns a copy of the internal status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetStatusMap() map[string]domain.VertexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.status)
}
