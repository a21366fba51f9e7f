// Package progrock records topology evaluations on a progrock tape.
package progrock

import (
	"context"
	"errors"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/gtprob/internal/core/ports"
)

// Recorder implements ports.Telemetry using a progrock recorder.
// Additional writers can be attached to observe the same updates.
type Recorder struct {
	w   *fanout
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	f := &fanout{primary: w, attached: make(map[int]progrock.Writer)}
	return &Recorder{
		w:   f,
		rec: progrock.NewRecorder(f),
	}
}

// Record starts a vertex. Vertices are keyed by name, so recording the same
// topology twice reports on the same vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Attach forwards every subsequent update to w until the returned detach
// function is called. Detaching does not close w.
func (r *Recorder) Attach(w progrock.Writer) (detach func()) {
	return r.w.attach(w)
}

// Close flushes and closes the recording session along with any writer
// still attached.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// fanout is a progrock.Writer that copies updates to a primary writer and
// any number of attached writers.
type fanout struct {
	mu       sync.RWMutex
	primary  progrock.Writer
	attached map[int]progrock.Writer
	next     int
}

func (f *fanout) attach(w progrock.Writer) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.attached[id] = w
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.attached, id)
		f.mu.Unlock()
	}
}

func (f *fanout) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	errs := []error{f.primary.WriteStatus(update)}
	for _, w := range f.attached {
		errs = append(errs, w.WriteStatus(update))
	}
	return errors.Join(errs...)
}

func (f *fanout) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := []error{f.primary.Close()}
	for id, w := range f.attached {
		errs = append(errs, w.Close())
		delete(f.attached, id)
	}
	return errors.Join(errs...)
}
