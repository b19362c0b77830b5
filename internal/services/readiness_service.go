package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/cache"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
)

const readinessCacheTTL = 10 * time.Minute

type readinessService struct {
	results repositories.ResultRepository
	cache   cache.CacheService
	logger  utils.Logger
}

func NewReadinessService(results repositories.ResultRepository, cacheService cache.CacheService, logger utils.Logger) ReadinessService {
	return &readinessService{
		results: results,
		cache:   cacheService,
		logger:  logger,
	}
}

func readinessCacheKey(userID uint) string {
	return fmt.Sprintf("readiness:%d", userID)
}

func (s *readinessService) GetReadiness(ctx context.Context, userID uint) (*ReadinessResponse, error) {
	key := readinessCacheKey(userID)

	var cached ReadinessResponse
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Readiness cache read failed", "user_id", userID, "error", err)
	}

	latest, err := s.results.LatestScores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest scores: %w", err)
	}
	if len(latest) == 0 {
		return nil, ErrNoResults
	}

	score := compositeFromLatest(latest)

	modules := make([]ModuleReadiness, 0, len(models.CompositeModules))
	var missing []string
	for _, module := range models.CompositeModules {
		pct, attempted := latest[module]
		modules = append(modules, ModuleReadiness{
			Module:     module,
			Percentage: pct,
			Weight:     moduleWeights[module],
			Attempted:  attempted,
		})
		if !attempted {
			missing = append(missing, string(module))
		}
	}

	response := &ReadinessResponse{
		ReadinessScore: score,
		Modules:        modules,
		MissingModules: missing,
		ComputedAt:     time.Now(),
	}

	if err := s.cache.Set(ctx, key, response, readinessCacheTTL); err != nil {
		s.logger.Warn("Readiness cache write failed", "user_id", userID, "error", err)
	}

	return response, nil
}

func (s *readinessService) InvalidateReadiness(ctx context.Context, userID uint) error {
	return s.cache.Delete(ctx, readinessCacheKey(userID))
}
