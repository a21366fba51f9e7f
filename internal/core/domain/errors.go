package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTopology is returned when a newick string does not describe a valid topology.
	ErrInvalidTopology = zerr.New("invalid topology")

	// ErrEmptyTopology is returned when an evaluation is requested for the empty topology.
	ErrEmptyTopology = zerr.New("empty topology")

	// ErrNonBinaryTopology is returned when a topology has a group with more than two children.
	ErrNonBinaryTopology = zerr.New("topology is not binary")

	// ErrNonPositiveTheta is returned when theta is zero, negative or not finite.
	ErrNonPositiveTheta = zerr.New("theta must be a finite positive number")

	// ErrComplexityExceeded is returned when a topology is more complex than the configured limit.
	ErrComplexityExceeded = zerr.New("topology complexity exceeds the limit")

	// ErrProbabilityUnderflow is returned when a probability is too small for a float64.
	ErrProbabilityUnderflow = zerr.New("probability underflows float64")

	// ErrNoTopologies is returned when an evaluation is requested without any input.
	ErrNoTopologies = zerr.New("no topologies specified")

	// ErrEvaluationFailed is returned when a topology in a batch cannot be evaluated.
	ErrEvaluationFailed = zerr.New("evaluation failed")

	// ErrResultCacheUnavailable is returned when the persistent result cache cannot be opened.
	ErrResultCacheUnavailable = zerr.New("result cache unavailable")

	// ErrResultCacheCorrupt is returned when a cached entry cannot be decoded.
	ErrResultCacheCorrupt = zerr.New("result cache entry is corrupt")

	// ErrConfigNotFound is returned when an explicitly named configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrInvalidConfig is returned when the configuration holds out of range values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnsupportedConfigVersion is returned for a configuration version this build does not understand.
	ErrUnsupportedConfigVersion = zerr.New("unsupported configuration version")
)
