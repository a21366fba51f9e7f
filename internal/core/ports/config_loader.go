package ports

import "go.trai.ch/gtprob/internal/core/domain"

// ConfigLoader defines the interface for loading the evaluation settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings from path. An empty path looks for the default
	// file in the working directory and falls back to defaults when it is absent.
	Load(path string) (domain.Settings, error)
}
