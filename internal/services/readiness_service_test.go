package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/cache"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCacheService is a mock implementation of cache.CacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func TestGetReadiness_WeightsLatestScores(t *testing.T) {
	results := new(MockResultRepository)
	cacheSvc := new(MockCacheService)
	service := NewReadinessService(results, cacheSvc, testLogger())
	ctx := context.Background()

	cacheSvc.On("Get", ctx, "readiness:1", mock.Anything).Return(cache.ErrCacheMiss)
	cacheSvc.On("Set", ctx, "readiness:1", mock.Anything, readinessCacheTTL).Return(nil)
	results.On("LatestScores", ctx, uint(1)).Return(map[models.TestModule]float64{
		models.ModulePIQ:         80,
		models.ModuleSituational: 60,
		models.ModuleWord:        50,
		models.ModuleStory:       70,
	}, nil)

	resp, err := service.GetReadiness(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 66, resp.ReadinessScore)
	assert.Len(t, resp.Modules, 4)
	assert.Empty(t, resp.MissingModules)

	// The readiness index is a display number; only per-module results
	// carry a risk tier.
	payload, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "risk_level")
}

func TestGetReadiness_ReportsMissingModules(t *testing.T) {
	results := new(MockResultRepository)
	cacheSvc := new(MockCacheService)
	service := NewReadinessService(results, cacheSvc, testLogger())
	ctx := context.Background()

	cacheSvc.On("Get", ctx, "readiness:2", mock.Anything).Return(cache.ErrCacheMiss)
	cacheSvc.On("Set", ctx, "readiness:2", mock.Anything, readinessCacheTTL).Return(nil)
	results.On("LatestScores", ctx, uint(2)).Return(map[models.TestModule]float64{
		models.ModulePIQ: 75,
	}, nil)

	resp, err := service.GetReadiness(ctx, 2)

	assert.NoError(t, err)
	// 75 * 0.25, rounded
	assert.Equal(t, 19, resp.ReadinessScore)
	assert.ElementsMatch(t, []string{"situational", "word", "story"}, resp.MissingModules)
}

func TestGetReadiness_NoResults(t *testing.T) {
	results := new(MockResultRepository)
	cacheSvc := new(MockCacheService)
	service := NewReadinessService(results, cacheSvc, testLogger())
	ctx := context.Background()

	cacheSvc.On("Get", ctx, "readiness:3", mock.Anything).Return(cache.ErrCacheMiss)
	results.On("LatestScores", ctx, uint(3)).Return(map[models.TestModule]float64{}, nil)

	_, err := service.GetReadiness(ctx, 3)

	assert.ErrorIs(t, err, ErrNoResults)
	cacheSvc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
