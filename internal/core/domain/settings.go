package domain

import "runtime"

const (
	// DefaultTheta is used when neither the configuration file nor a flag sets theta.
	DefaultTheta = 1.0

	// DefaultMaxComplexity bounds the complexity of topologies accepted for evaluation.
	DefaultMaxComplexity uint64 = 10_000_000

	// ConfigVersion is the configuration file version understood by this build.
	ConfigVersion = "1"
)

// Settings holds the evaluation parameters resolved from the configuration
// file and command line flags.
type Settings struct {
	Theta         float64
	MaxComplexity uint64
	Parallelism   int
	LogJSON       bool
	LogLevel      LogLevel
	// CacheDir holds the persistent result cache. Empty disables it.
	CacheDir string
}

// DefaultSettings returns the settings used without a configuration file.
func DefaultSettings() Settings {
	return Settings{
		Theta:         DefaultTheta,
		MaxComplexity: DefaultMaxComplexity,
		Parallelism:   runtime.NumCPU(),
		LogLevel:      LogLevelInfo,
	}
}
