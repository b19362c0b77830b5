package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/events"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/scoring"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"gorm.io/datatypes"
)

type evaluationDeps struct {
	results     repositories.ResultRepository
	progress    ProgressService
	readiness   ReadinessService
	leaderboard LeaderboardService
	publisher   events.EventPublisher
	validator   *utils.Validator
	logger      utils.Logger
	clock       func() time.Time
}

type evaluationService struct {
	evaluationDeps
}

func NewEvaluationService(deps evaluationDeps) EvaluationService {
	if deps.clock == nil {
		deps.clock = time.Now
	}
	return &evaluationService{evaluationDeps: deps}
}

// ===== EVALUATORS =====

func (s *evaluationService) EvaluateSituational(ctx context.Context, userID uint, req *SituationalTestRequest) (*EvaluationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	items := make([]scoring.SituationalItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = scoring.SituationalItem{
			ID:       it.ID,
			Theme:    it.Theme,
			Response: it.Response,
		}
	}

	result := scoring.EvaluateSituational(items)
	return s.freeze(ctx, userID, models.ModuleSituational,
		float64(result.TotalScore), float64(result.MaxScore), result.Percentage,
		string(result.RiskLevel), result)
}

func (s *evaluationService) EvaluateStories(ctx context.Context, userID uint, req *StoryTestRequest) (*EvaluationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	items := make([]scoring.StoryItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = scoring.StoryItem{
			ImageID:    it.ImageID,
			Theme:      it.Theme,
			Difficulty: scoring.Difficulty(it.Difficulty),
			Story:      it.Story,
		}
	}

	result := scoring.EvaluateStories(items)
	return s.freeze(ctx, userID, models.ModuleStory,
		float64(result.TotalScore), float64(result.MaxScore), float64(result.Percentage),
		string(result.RiskLevel), result)
}

func (s *evaluationService) EvaluateWords(ctx context.Context, userID uint, req *WordTestRequest) (*EvaluationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	items := make([]scoring.WordItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = scoring.WordItem{
			WordID:     it.WordID,
			Word:       it.Word,
			Difficulty: scoring.Difficulty(it.Difficulty),
			Theme:      it.Theme,
			Sentence:   it.Sentence,
		}
	}

	result := scoring.EvaluateWordAssociations(items)
	return s.freeze(ctx, userID, models.ModuleWord,
		float64(result.TotalScore), float64(result.MaxScore), float64(result.Percentage),
		string(result.RiskLevel), result)
}

func (s *evaluationService) EvaluatePIQ(ctx context.Context, userID uint, req *PIQRequest) (*EvaluationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	profile := scoring.Profile{
		PositionOfResponsibility: req.PositionOfResponsibility,
		TeamSportsYears:          req.TeamSportsYears,
		NCCInvolvement:           req.NCCInvolvement,
		SportsLevel:              scoring.SportsLevel(req.SportsLevel),
		OrganizedEvent:           req.OrganizedEvent,
		VolunteerWork:            req.VolunteerWork,
		FamilyResponsibility:     req.FamilyResponsibility,
		AcademicConsistency:      req.AcademicConsistency,
		PublicSpeaking:           req.PublicSpeaking,
		CompetitiveAchievements:  req.CompetitiveAchievements,
		AttemptNumber:            req.AttemptNumber,
	}

	result := scoring.ScorePIQ(profile)
	return s.freeze(ctx, userID, models.ModulePIQ,
		float64(result.AggregateScore), 100, float64(result.AggregateScore),
		string(result.RiskLevel), result)
}

func (s *evaluationService) EvaluatePhysical(ctx context.Context, userID uint, req *PhysicalRequest) (*EvaluationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	profile := scoring.PhysicalProfile{
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		Vision:         req.Vision,
		FlatFoot:       req.FlatFoot,
		ColorBlind:     req.ColorBlind,
		SurgeryHistory: req.SurgeryHistory,
		Pushups:        req.Pushups,
		RunMinutes:     req.RunMinutes,
		Situps:         req.Situps,
	}

	result := scoring.ScorePhysical(profile)
	return s.freeze(ctx, userID, models.ModulePhysical,
		float64(result.AggregateScore), 100, float64(result.AggregateScore),
		string(result.RiskLevel), result)
}

// ===== PERSISTENCE PIPELINE =====

// freeze stores the engine output as an immutable result row and runs the
// post-evaluation side effects. Side effect failures are logged, never
// surfaced: the evaluation itself already succeeded.
func (s *evaluationService) freeze(ctx context.Context, userID uint, module models.TestModule,
	score, maxScore, percentage float64, riskLevel string, detail interface{}) (*EvaluationResponse, error) {

	breakdown, err := json.Marshal(detail)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	result := &models.TestResult{
		UserID:     userID,
		Module:     module,
		Score:      score,
		MaxScore:   maxScore,
		Percentage: percentage,
		RiskLevel:  riskLevel,
		Breakdown:  datatypes.JSON(breakdown),
	}

	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	s.logger.Info("Evaluation stored",
		"user_id", userID,
		"module", module,
		"percentage", percentage,
		"risk_level", riskLevel)

	if err := s.publisher.Publish(ctx, events.NewEvaluationCompletedEvent(result)); err != nil {
		s.logger.Error("Failed to publish evaluation event",
			"result_id", result.ID, "error", err)
	}

	medals, err := s.progress.RecordPractice(ctx, userID, module, percentage, s.clock())
	if err != nil {
		s.logger.Error("Failed to record practice progress",
			"user_id", userID, "error", err)
	}

	s.refreshReadiness(ctx, userID)

	return &EvaluationResponse{
		ResultID:    result.ID,
		Module:      module,
		Score:       score,
		MaxScore:    maxScore,
		Percentage:  percentage,
		RiskLevel:   riskLevel,
		Detail:      detail,
		NewMedals:   medals,
		EvaluatedAt: result.CreatedAt,
	}, nil
}

// refreshReadiness drops the cached readiness index and pushes the updated
// composite score onto the leaderboard.
func (s *evaluationService) refreshReadiness(ctx context.Context, userID uint) {
	if err := s.readiness.InvalidateReadiness(ctx, userID); err != nil {
		s.logger.Error("Failed to invalidate readiness cache",
			"user_id", userID, "error", err)
	}

	latest, err := s.results.LatestScores(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load latest scores for leaderboard",
			"user_id", userID, "error", err)
		return
	}

	readiness := compositeFromLatest(latest)
	if err := s.leaderboard.UpdateScore(ctx, userID, float64(readiness)); err != nil {
		s.logger.Error("Failed to update leaderboard",
			"user_id", userID, "error", err)
	}
}
