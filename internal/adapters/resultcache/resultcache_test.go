package resultcache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gtprob/internal/adapters/resultcache"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func topology(t *testing.T, s string) domain.Topology {
	t.Helper()
	topo, err := domain.ParseTopology(s)
	require.NoError(t, err)
	return topo
}

func newFactory(t *testing.T) *resultcache.Factory {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return resultcache.NewFactory(log)
}

func TestCache_PutGet(t *testing.T) {
	c, err := resultcache.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	topo := topology(t, "(1,(1,1))")

	_, ok, err := c.Get(ctx, topo, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, topo, 1, 5.0/243))

	p, ok, err := c.Get(ctx, topo, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0/243, p)
}

func TestCache_KeyedByTheta(t *testing.T) {
	c, err := resultcache.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	topo := topology(t, "(1,1)")
	require.NoError(t, c.Put(ctx, topo, 1, 0.25))

	_, ok, err := c.Get(ctx, topo, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_EqualTopologiesShareEntry(t *testing.T) {
	c, err := resultcache.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Put(ctx, topology(t, "(1,(2,3))"), 1, 0.01))

	p, ok, err := c.Get(ctx, topology(t, " ( 1 , ( 2 , 3 ) ) ;"), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.01, p)

	_, ok, err = c.Get(ctx, topology(t, "(1,(3,2))"), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_CancelledContext(t *testing.T) {
	c, err := resultcache.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = c.Get(ctx, topology(t, "(1,1)"), 1)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, c.Put(ctx, topology(t, "(1,1)"), 1, 0.25), context.Canceled)
}

func TestFactory_Persists(t *testing.T) {
	dir := t.TempDir()
	f := newFactory(t)
	ctx := context.Background()
	topo := topology(t, "(2,2)")

	c, err := f.Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, topo, 1, 5.0/216))
	require.NoError(t, c.Close())

	c, err = f.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	p, ok, err := c.Get(ctx, topo, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0/216, p)
}

func TestFactory_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	f := newFactory(t)

	c, err := f.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	// The directory is locked by the first handle.
	second, err := f.Open(dir)
	require.ErrorContains(t, err, domain.ErrResultCacheUnavailable.Error())
	assert.Nil(t, second)
}

func TestKey(t *testing.T) {
	a := resultcache.Key(topology(t, "(1,2)"), 1)
	b := resultcache.Key(topology(t, "(2,1)"), 1)
	c := resultcache.Key(topology(t, "(1,2)"), 0.5)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, resultcache.Key(topology(t, "(1,2)"), 1))
}

func TestCache_CorruptEntry(t *testing.T) {
	c, err := resultcache.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	topo := topology(t, "(1,1)")

	require.NoError(t, c.PutRaw(resultcache.Key(topo, 1), []byte{1, 2, 3}))
	_, ok, err := c.Get(ctx, topo, 1)
	require.ErrorContains(t, err, domain.ErrResultCacheCorrupt.Error())
	assert.False(t, ok)

	require.NoError(t, c.PutRaw(resultcache.Key(topo, 1), make([]byte, 8)))
	_, _, err = c.Get(ctx, topo, 1)
	require.ErrorContains(t, err, domain.ErrResultCacheCorrupt.Error())
}
