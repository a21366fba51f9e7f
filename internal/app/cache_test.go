package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gtprob/internal/app"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func (f *fixture) expectCacheDir(dir string) {
	settings := domain.DefaultSettings()
	settings.CacheDir = dir
	f.loader.EXPECT().Load("").Return(settings, nil)
}

func TestApp_Evaluate_ResultCache(t *testing.T) {
	f := newFixture(t, nil)
	f.expectCacheDir(".gtprob/cache")

	cache := mocks.NewMockResultCache(gomock.NewController(t))
	f.caches.EXPECT().Open(".gtprob/cache").Return(cache, nil)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), domain.DefaultTheta).Return(0.25, true, nil)
	cache.EXPECT().Close().Return(nil)

	results, err := f.app.Evaluate(context.Background(), []string{"(1,1)"}, app.Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCached, results[0].Status)
	assert.InDelta(t, 0.25, results[0].Probability, 0)
}

func TestApp_Evaluate_CacheDirOverride(t *testing.T) {
	f := newFixture(t, nil)
	f.expectDefaults()

	cache := mocks.NewMockResultCache(gomock.NewController(t))
	f.caches.EXPECT().Open("/tmp/gtprob").Return(cache, nil)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), domain.DefaultTheta).Return(0.0, false, nil)
	f.evaluator.EXPECT().Calculate(gomock.Any(), domain.DefaultTheta).Return(0.25, nil)
	cache.EXPECT().Put(gomock.Any(), gomock.Any(), domain.DefaultTheta, 0.25).Return(nil)
	cache.EXPECT().Close().Return(nil)

	_, err := f.app.Evaluate(context.Background(), []string{"(1,1)"}, app.Options{CacheDir: ptr("/tmp/gtprob")})
	require.NoError(t, err)
}

func TestApp_Evaluate_NoCache(t *testing.T) {
	f := newFixture(t, nil)
	f.expectCacheDir(".gtprob/cache")
	f.evaluator.EXPECT().Calculate(gomock.Any(), domain.DefaultTheta).Return(0.25, nil)

	_, err := f.app.Evaluate(context.Background(), []string{"(1,1)"}, app.Options{NoCache: true})
	require.NoError(t, err)
}

func TestApp_Evaluate_CacheOpenError(t *testing.T) {
	f := newFixture(t, nil)
	f.expectCacheDir(".gtprob/cache")
	f.caches.EXPECT().Open(".gtprob/cache").Return(nil, domain.ErrResultCacheUnavailable)

	_, err := f.app.Evaluate(context.Background(), []string{"(1,1)"}, app.Options{})
	require.ErrorIs(t, err, domain.ErrResultCacheUnavailable)
}

func TestApp_Evaluate_CacheCloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn("failed to close result cache: locked")

	f := newFixture(t, log)
	f.expectCacheDir("cache")

	cache := mocks.NewMockResultCache(ctrl)
	f.caches.EXPECT().Open("cache").Return(cache, nil)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.25, true, nil)
	cache.EXPECT().Close().Return(errors.New("locked"))

	_, err := f.app.Evaluate(context.Background(), []string{"(1,1)"}, app.Options{})
	require.NoError(t, err)
}
