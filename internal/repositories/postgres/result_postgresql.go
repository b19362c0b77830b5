package postgres

import (
	"context"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"gorm.io/gorm"
)

type ResultPostgreSQL struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{db: db}
}

func (r ResultPostgreSQL) Create(ctx context.Context, result *models.TestResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r ResultPostgreSQL) GetByID(ctx context.Context, id uint) (*models.TestResult, error) {
	var result models.TestResult
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r ResultPostgreSQL) ListByUser(ctx context.Context, userID uint, filters repositories.ResultFilters) ([]*models.TestResult, int64, error) {
	var results []*models.TestResult
	var total int64

	// apply filters first
	query := r.db.WithContext(ctx).Model(&models.TestResult{}).Where("user_id = ?", userID)
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then pagination and sorting
	order := "created_at DESC"
	if filters.SortOrder == "asc" {
		order = "created_at ASC"
	}
	query = query.Order(order)
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r ResultPostgreSQL) GetLatest(ctx context.Context, userID uint, module models.TestModule) (*models.TestResult, error) {
	var result models.TestResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND module = ?", userID, module).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r ResultPostgreSQL) LatestScores(ctx context.Context, userID uint) (map[models.TestModule]float64, error) {
	var rows []struct {
		Module     models.TestModule
		Percentage float64
	}
	if err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (module) module, percentage
		     FROM test_results
		     WHERE user_id = ?
		     ORDER BY module, created_at DESC`, userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	scores := make(map[models.TestModule]float64, len(rows))
	for _, row := range rows {
		scores[row.Module] = row.Percentage
	}
	return scores, nil
}

func (r ResultPostgreSQL) GetUserStats(ctx context.Context, userID uint) (*repositories.UserStats, error) {
	stats := &repositories.UserStats{
		TestsByModule: make(map[models.TestModule]int),
	}

	var rows []struct {
		Module models.TestModule
		Count  int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.TestResult{}).
		Select("module, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("module").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.TestsByModule[row.Module] = row.Count
		stats.TotalTests += row.Count
	}

	if stats.TotalTests > 0 {
		var agg struct {
			Avg  float64
			Best float64
		}
		if err := r.db.WithContext(ctx).
			Model(&models.TestResult{}).
			Select("AVG(percentage) as avg, MAX(percentage) as best").
			Where("user_id = ?", userID).
			Scan(&agg).Error; err != nil {
			return nil, err
		}
		stats.AveragePercent = agg.Avg
		stats.BestPercent = agg.Best
	}

	return stats, nil
}

func (r ResultPostgreSQL) applyFilters(query *gorm.DB, filters repositories.ResultFilters) *gorm.DB {
	if filters.Module != nil {
		query = query.Where("module = ?", *filters.Module)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}
