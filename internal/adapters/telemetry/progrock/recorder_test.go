package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/gtprob/internal/adapters/telemetry/progrock"
	"go.trai.ch/gtprob/internal/core/domain"
)

// countingWriter counts the status updates it receives.
type countingWriter struct {
	mu      sync.Mutex
	updates int
	closed  bool
}

func (w *countingWriter) WriteStatus(*vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates++
	return nil
}

func (w *countingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordsVertices(t *testing.T) {
	w := &countingWriter{}
	recorder := progrock.NewRecorder(w)
	ctx := context.Background()

	_, done := recorder.Record(ctx, "(1,(1,1))")
	_, err := done.Stdout().Write([]byte("0.0205761317\n"))
	require.NoError(t, err)
	done.Log(domain.LogLevelDebug, "stored 3 sub-topologies")
	done.Complete(nil)

	_, failed := recorder.Record(ctx, "(1,2,3)")
	failed.Complete(errors.New("topology is not binary"))

	_, cached := recorder.Record(ctx, "(1,(1,1)) #2")
	cached.Cached()
	cached.Complete(nil)

	require.NoError(t, recorder.Close())

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Positive(t, w.updates)
	assert.True(t, w.closed)
}

func TestRecorder_Attach(t *testing.T) {
	primary := &countingWriter{}
	recorder := progrock.NewRecorder(primary)
	ctx := context.Background()

	attached := &countingWriter{}
	detach := recorder.Attach(attached)

	_, v := recorder.Record(ctx, "(1,1)")
	v.Complete(nil)

	attached.mu.Lock()
	seen := attached.updates
	attached.mu.Unlock()
	assert.Positive(t, seen)

	detach()

	_, v = recorder.Record(ctx, "(1,2)")
	v.Complete(nil)

	attached.mu.Lock()
	assert.Equal(t, seen, attached.updates)
	assert.False(t, attached.closed)
	attached.mu.Unlock()

	primary.mu.Lock()
	assert.Greater(t, primary.updates, seen)
	primary.mu.Unlock()

	require.NoError(t, recorder.Close())
}

func TestRecorder_CloseClosesAttached(t *testing.T) {
	primary := &countingWriter{}
	recorder := progrock.NewRecorder(primary)

	attached := &countingWriter{}
	_ = recorder.Attach(attached)

	require.NoError(t, recorder.Close())

	attached.mu.Lock()
	defer attached.mu.Unlock()
	assert.True(t, attached.closed)
}
