package services

import (
	"context"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/cache"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/events"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/scoring"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/redis/go-redis/v9"
)

// ===== REQUEST TYPES =====

type SituationalItemRequest struct {
	ID       string `json:"id" validate:"required"`
	Theme    string `json:"theme" validate:"omitempty,max=50"`
	Response string `json:"response" validate:"max=2000"`
}

type SituationalTestRequest struct {
	Items []SituationalItemRequest `json:"items" validate:"required,min=1,max=60,dive"`
}

type StoryItemRequest struct {
	ImageID    string `json:"image_id" validate:"required"`
	Theme      string `json:"theme" validate:"omitempty,max=50"`
	Difficulty string `json:"difficulty" validate:"difficulty_level"`
	Story      string `json:"story" validate:"max=5000"`
}

type StoryTestRequest struct {
	Items []StoryItemRequest `json:"items" validate:"required,min=1,max=12,dive"`
}

type WordItemRequest struct {
	WordID     string `json:"word_id" validate:"required"`
	Word       string `json:"word" validate:"required,max=50"`
	Difficulty string `json:"difficulty" validate:"difficulty_level"`
	Theme      string `json:"theme" validate:"omitempty,max=50"`
	Sentence   string `json:"sentence" validate:"max=500"`
}

type WordTestRequest struct {
	Items []WordItemRequest `json:"items" validate:"required,min=1,max=60,dive"`
}

type PIQRequest struct {
	PositionOfResponsibility bool   `json:"position_of_responsibility"`
	TeamSportsYears          int    `json:"team_sports_years" validate:"min=0,max=20"`
	NCCInvolvement           bool   `json:"ncc_involvement"`
	SportsLevel              string `json:"sports_level" validate:"sports_level"`
	OrganizedEvent           bool   `json:"organized_event"`
	VolunteerWork            bool   `json:"volunteer_work"`
	FamilyResponsibility     bool   `json:"family_responsibility"`
	AcademicConsistency      bool   `json:"academic_consistency"`
	PublicSpeaking           bool   `json:"public_speaking"`
	CompetitiveAchievements  bool   `json:"competitive_achievements"`
	AttemptNumber            int    `json:"attempt_number" validate:"min=1,max=10"`
}

type PhysicalRequest struct {
	HeightCm       float64 `json:"height_cm" validate:"min=50,max=250"`
	WeightKg       float64 `json:"weight_kg" validate:"min=20,max=200"`
	Vision         string  `json:"vision" validate:"required,vision_category"`
	FlatFoot       bool    `json:"flat_foot"`
	ColorBlind     bool    `json:"color_blind"`
	SurgeryHistory bool    `json:"surgery_history"`
	Pushups        int     `json:"pushups" validate:"min=0,max=200"`
	RunMinutes     float64 `json:"run_minutes" validate:"min=0,max=60"`
	Situps         int     `json:"situps" validate:"min=0,max=200"`
}

type HistoryRequest struct {
	Module   string     `json:"module" validate:"omitempty,test_module"`
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
	Limit    int        `json:"limit" validate:"min=0,max=100"`
	Offset   int        `json:"offset" validate:"min=0"`
}

// ===== RESPONSE TYPES =====

// EvaluationResponse is returned by every evaluator. Detail carries the
// engine-specific result struct that was also frozen into the stored row.
type EvaluationResponse struct {
	ResultID    uint              `json:"result_id"`
	Module      models.TestModule `json:"module"`
	Score       float64           `json:"score"`
	MaxScore    float64           `json:"max_score"`
	Percentage  float64           `json:"percentage"`
	RiskLevel   string            `json:"risk_level"`
	Detail      interface{}       `json:"detail"`
	NewMedals   []*models.Medal   `json:"new_medals,omitempty"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
}

// ModuleReadiness is one module's contribution to the readiness index.
type ModuleReadiness struct {
	Module     models.TestModule `json:"module"`
	Percentage float64           `json:"percentage"`
	Weight     float64           `json:"weight"`
	Attempted  bool              `json:"attempted"`
}

type ReadinessResponse struct {
	ReadinessScore int               `json:"readiness_score"`
	Modules        []ModuleReadiness `json:"modules"`
	MissingModules []string          `json:"missing_modules,omitempty"`
	ComputedAt     time.Time         `json:"computed_at"`
}

type HistoryEntry struct {
	ID         uint              `json:"id"`
	Module     models.TestModule `json:"module"`
	Score      float64           `json:"score"`
	MaxScore   float64           `json:"max_score"`
	Percentage float64           `json:"percentage"`
	RiskLevel  string            `json:"risk_level"`
	CreatedAt  time.Time         `json:"created_at"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type StreakInfo struct {
	Current          int       `json:"current"`
	Longest          int       `json:"longest"`
	LastPracticeDate time.Time `json:"last_practice_date"`
}

type ProgressResponse struct {
	Streak StreakInfo              `json:"streak"`
	Medals []*models.Medal         `json:"medals"`
	Stats  *repositories.UserStats `json:"stats"`
}

type LeaderboardEntry struct {
	Rank      int     `json:"rank"`
	UserID    uint    `json:"user_id"`
	FullName  string  `json:"full_name"`
	Readiness float64 `json:"readiness"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	Self    *LeaderboardEntry  `json:"self,omitempty"`
}

// ===== SERVICE INTERFACES =====

// EvaluationService runs the scoring engines and freezes their output.
type EvaluationService interface {
	EvaluateSituational(ctx context.Context, userID uint, req *SituationalTestRequest) (*EvaluationResponse, error)
	EvaluateStories(ctx context.Context, userID uint, req *StoryTestRequest) (*EvaluationResponse, error)
	EvaluateWords(ctx context.Context, userID uint, req *WordTestRequest) (*EvaluationResponse, error)
	EvaluatePIQ(ctx context.Context, userID uint, req *PIQRequest) (*EvaluationResponse, error)
	EvaluatePhysical(ctx context.Context, userID uint, req *PhysicalRequest) (*EvaluationResponse, error)
}

// ReadinessService computes the composite readiness index from the latest
// result of each practice module.
type ReadinessService interface {
	GetReadiness(ctx context.Context, userID uint) (*ReadinessResponse, error)
	InvalidateReadiness(ctx context.Context, userID uint) error
}

// ProgressService tracks streaks, medals and per-user history.
type ProgressService interface {
	RecordPractice(ctx context.Context, userID uint, module models.TestModule, percentage float64, now time.Time) ([]*models.Medal, error)
	GetProgress(ctx context.Context, userID uint) (*ProgressResponse, error)
	GetHistory(ctx context.Context, userID uint, req *HistoryRequest) (*HistoryResponse, error)
}

// LeaderboardService ranks users by their readiness index.
type LeaderboardService interface {
	UpdateScore(ctx context.Context, userID uint, readiness float64) error
	Top(ctx context.Context, userID uint, limit int) (*LeaderboardResponse, error)
}

// ExportService renders a user's full test history as a spreadsheet.
type ExportService interface {
	ExportHistory(ctx context.Context, userID uint) ([]byte, error)
}

// ===== SERVICE MANAGER =====

// ServiceManager wires every service with its shared dependencies.
type ServiceManager struct {
	Evaluation   EvaluationService
	Readiness    ReadinessService
	Progress     ProgressService
	Leaderboard  LeaderboardService
	Export       ExportService
	Subscription SubscriptionService
}

type Dependencies struct {
	Results      repositories.ResultRepository
	Users        repositories.UserRepository
	Gamification repositories.GamificationRepository
	Cache        cache.CacheService
	Redis        *redis.Client
	Publisher    events.EventPublisher
	Validator    *utils.Validator
	Logger       utils.Logger
	Clock        func() time.Time
}

func NewServiceManager(deps Dependencies) *ServiceManager {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	readiness := NewReadinessService(deps.Results, deps.Cache, deps.Logger)
	progress := NewProgressService(deps.Results, deps.Gamification, deps.Publisher, deps.Logger)
	leaderboard := NewLeaderboardService(deps.Redis, deps.Users, deps.Logger)
	evaluation := NewEvaluationService(evaluationDeps{
		results:     deps.Results,
		progress:    progress,
		readiness:   readiness,
		leaderboard: leaderboard,
		publisher:   deps.Publisher,
		validator:   deps.Validator,
		logger:      deps.Logger,
		clock:       deps.Clock,
	})
	export := NewExportService(deps.Results, deps.Logger)
	subscription := NewSubscriptionService(deps.Users, deps.Publisher, deps.Validator, deps.Logger, deps.Clock)

	return &ServiceManager{
		Evaluation:   evaluation,
		Readiness:    readiness,
		Progress:     progress,
		Leaderboard:  leaderboard,
		Export:       export,
		Subscription: subscription,
	}
}

// moduleWeights mirrors the composite readiness weighting for display.
var moduleWeights = map[models.TestModule]float64{
	models.ModulePIQ:         0.25,
	models.ModuleSituational: 0.25,
	models.ModuleWord:        0.20,
	models.ModuleStory:       0.30,
}

// compositeFromLatest maps latest per-module percentages onto the scoring
// package's readiness formula, treating absent modules as zero.
func compositeFromLatest(latest map[models.TestModule]float64) int {
	return scoring.CompositeReadiness(
		latest[models.ModulePIQ],
		latest[models.ModuleSituational],
		latest[models.ModuleWord],
		latest[models.ModuleStory],
	)
}
