package repositories

import (
	"context"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
)

// ResultRepository persists immutable evaluation outcomes. Rows are never
// updated after creation.
type ResultRepository interface {
	Create(ctx context.Context, result *models.TestResult) error
	GetByID(ctx context.Context, id uint) (*models.TestResult, error)

	// Query operations
	ListByUser(ctx context.Context, userID uint, filters ResultFilters) ([]*models.TestResult, int64, error)
	GetLatest(ctx context.Context, userID uint, module models.TestModule) (*models.TestResult, error)

	// LatestScores returns the most recent percentage per module for a
	// user. Modules never attempted are absent from the map.
	LatestScores(ctx context.Context, userID uint) (map[models.TestModule]float64, error)

	// Statistics
	GetUserStats(ctx context.Context, userID uint) (*UserStats, error)
}
