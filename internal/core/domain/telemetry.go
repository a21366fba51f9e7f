package domain

import "strings"

// VertexStatus represents the lifecycle state of one topology evaluation.
type VertexStatus string

const (
	// VertexStatusPending indicates the topology is waiting for a worker.
	VertexStatusPending VertexStatus = "pending"
	// VertexStatusRunning indicates the topology is being evaluated.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates the probability was computed.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the topology was rejected or the evaluation failed.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the result was reused, either from an identical
	// topology in the same batch or from the persistent result cache.
	VertexStatusCached VertexStatus = "cached"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed, Cached).
func (s VertexStatus) IsTerminal() bool {
	switch s {
	case VertexStatusCompleted, VertexStatusFailed, VertexStatusCached:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a configuration value such as "debug" into a LogLevel.
// Unknown values map to LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}
