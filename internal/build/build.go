// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit and Date describe the build and are set by linker flags.
var (
	Commit = "none"
	Date   = "unknown"
)

// History lists the notable changes of each release, oldest first.
var History = []string{
	"0.1.0: probability of binary topologies with a per-call cache",
	"0.2.0: batch evaluation with bounded parallelism and duplicate detection",
	"0.3.0: decomposition report, inspect and examples commands",
	"0.4.0: YAML configuration, JSON logs and evaluator statistics",
	"0.5.0: persistent result cache and live progress display",
}
