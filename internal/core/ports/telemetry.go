package ports

import (
	"context"
	"io"

	"go.trai.ch/gtprob/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a batch of evaluations.
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the output of the work.
	Stdout() io.Writer
	// Log writes a message with a severity to the vertex output.
	Log(level domain.LogLevel, msg string)
	// Cached marks the vertex as satisfied without doing the work.
	Cached()
	// Complete marks the vertex as done, failed if err is not nil.
	Complete(err error)
}
