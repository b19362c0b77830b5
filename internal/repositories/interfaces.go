package repositories

import (
	"errors"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type ResultFilters struct {
	Module    *models.TestModule `json:"module"`
	UserID    *uint              `json:"user_id"`
	DateFrom  *time.Time         `json:"date_from"`
	DateTo    *time.Time         `json:"date_to"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
	SortOrder string             `json:"sort_order"` // "asc", "desc"
}

// ===== SHARED HELPER STRUCTS =====

// ModuleScore is a user's most recent percentage for one module.
type ModuleScore struct {
	Module     models.TestModule `json:"module"`
	Percentage float64           `json:"percentage"`
	RecordedAt time.Time         `json:"recorded_at"`
}

// ===== SHARED STATISTICS STRUCTS =====

type UserStats struct {
	TotalTests     int                       `json:"total_tests"`
	TestsByModule  map[models.TestModule]int `json:"tests_by_module"`
	AveragePercent float64                   `json:"average_percent"`
	BestPercent    float64                   `json:"best_percent"`
}

// IsNotFoundError reports whether err is the database's record-not-found
// condition.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
