// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gtprob/internal/adapters/config"
	_ "go.trai.ch/gtprob/internal/adapters/logger"
	_ "go.trai.ch/gtprob/internal/adapters/metrics"
	_ "go.trai.ch/gtprob/internal/adapters/resultcache"
	_ "go.trai.ch/gtprob/internal/adapters/store"
	_ "go.trai.ch/gtprob/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/gtprob/internal/app"
	_ "go.trai.ch/gtprob/internal/engine/probability"
	_ "go.trai.ch/gtprob/internal/engine/scheduler"
)
