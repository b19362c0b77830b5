package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/events"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
)

const (
	weekStreakDays  = 7
	comebackGapDays = 7
	highScorerMark  = 90.0
)

var medalNames = map[models.MedalCode]string{
	models.MedalFirstTest:   "First Steps",
	models.MedalHighScorer:  "High Scorer",
	models.MedalWeekStreak:  "Seven-Day Streak",
	models.MedalAllRounder:  "All-Rounder",
	models.MedalComebackKid: "Comeback Kid",
}

type progressService struct {
	results      repositories.ResultRepository
	gamification repositories.GamificationRepository
	publisher    events.EventPublisher
	logger       utils.Logger
}

func NewProgressService(
	results repositories.ResultRepository,
	gamification repositories.GamificationRepository,
	publisher events.EventPublisher,
	logger utils.Logger,
) ProgressService {
	return &progressService{
		results:      results,
		gamification: gamification,
		publisher:    publisher,
		logger:       logger,
	}
}

// ===== STREAK TRACKING =====

// RecordPractice advances the user's practice streak for the given day and
// awards any medals the new result unlocked. It is called once per stored
// evaluation; repeated practice on the same day leaves the streak untouched.
func (s *progressService) RecordPractice(ctx context.Context, userID uint, module models.TestModule, percentage float64, now time.Time) ([]*models.Medal, error) {
	streak, err := s.gamification.GetStreak(ctx, userID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	if streak == nil {
		streak = &models.Streak{UserID: userID}
	}

	today := truncateToDay(now)
	last := truncateToDay(streak.LastPracticeDate)
	gapDays := int(today.Sub(last).Hours() / 24)
	hadPractice := !streak.LastPracticeDate.IsZero()

	extended := false
	switch {
	case hadPractice && gapDays == 0:
		// Already practiced today.
	case hadPractice && gapDays == 1:
		streak.Current++
		extended = true
	default:
		streak.Current = 1
		extended = true
	}
	if streak.Current > streak.Longest {
		streak.Longest = streak.Current
	}
	streak.LastPracticeDate = today

	if err := s.gamification.SaveStreak(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to save streak: %w", err)
	}

	if extended {
		if err := s.publisher.Publish(ctx, events.NewStreakExtendedEvent(streak)); err != nil {
			s.logger.Error("Failed to publish streak event", "user_id", userID, "error", err)
		}
	}

	return s.awardMedals(ctx, userID, percentage, streak, hadPractice && gapDays >= comebackGapDays, now)
}

// truncateToDay normalizes to UTC first so that a stored practice date and a
// caller clock in different zones count whole days the same way.
func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ===== MEDALS =====

func (s *progressService) awardMedals(ctx context.Context, userID uint, percentage float64, streak *models.Streak, comeback bool, now time.Time) ([]*models.Medal, error) {
	var candidates []models.MedalCode

	candidates = append(candidates, models.MedalFirstTest)
	if percentage >= highScorerMark {
		candidates = append(candidates, models.MedalHighScorer)
	}
	if streak.Current >= weekStreakDays {
		candidates = append(candidates, models.MedalWeekStreak)
	}
	if comeback {
		candidates = append(candidates, models.MedalComebackKid)
	}
	if s.coversAllModules(ctx, userID) {
		candidates = append(candidates, models.MedalAllRounder)
	}

	var awarded []*models.Medal
	for _, code := range candidates {
		has, err := s.gamification.HasMedal(ctx, userID, code)
		if err != nil {
			return awarded, fmt.Errorf("failed to check medal %s: %w", code, err)
		}
		if has {
			continue
		}

		medal := &models.Medal{
			UserID:    userID,
			Code:      code,
			Name:      medalNames[code],
			AwardedAt: now,
		}
		if err := s.gamification.AwardMedal(ctx, medal); err != nil {
			return awarded, fmt.Errorf("failed to award medal %s: %w", code, err)
		}
		awarded = append(awarded, medal)

		s.logger.Info("Medal awarded", "user_id", userID, "code", code)
		if err := s.publisher.Publish(ctx, events.NewMedalAwardedEvent(medal)); err != nil {
			s.logger.Error("Failed to publish medal event", "user_id", userID, "error", err)
		}
	}

	return awarded, nil
}

func (s *progressService) coversAllModules(ctx context.Context, userID uint) bool {
	latest, err := s.results.LatestScores(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load latest scores for medal check", "user_id", userID, "error", err)
		return false
	}
	for _, module := range models.CompositeModules {
		if _, ok := latest[module]; !ok {
			return false
		}
	}
	return true
}

// ===== PROGRESS AND HISTORY =====

func (s *progressService) GetProgress(ctx context.Context, userID uint) (*ProgressResponse, error) {
	streak, err := s.gamification.GetStreak(ctx, userID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	if streak == nil {
		streak = &models.Streak{UserID: userID}
	}

	medals, err := s.gamification.ListMedals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medals: %w", err)
	}

	stats, err := s.results.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	return &ProgressResponse{
		Streak: StreakInfo{
			Current:          streak.Current,
			Longest:          streak.Longest,
			LastPracticeDate: streak.LastPracticeDate,
		},
		Medals: medals,
		Stats:  stats,
	}, nil
}

func (s *progressService) GetHistory(ctx context.Context, userID uint, req *HistoryRequest) (*HistoryResponse, error) {
	filters := repositories.ResultFilters{
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Limit:     req.Limit,
		Offset:    req.Offset,
		SortOrder: "desc",
	}
	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if req.Module != "" {
		module := models.TestModule(req.Module)
		filters.Module = &module
	}

	results, total, err := s.results.ListByUser(ctx, userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	entries := make([]HistoryEntry, len(results))
	for i, r := range results {
		entries[i] = HistoryEntry{
			ID:         r.ID,
			Module:     r.Module,
			Score:      r.Score,
			MaxScore:   r.MaxScore,
			Percentage: r.Percentage,
			RiskLevel:  r.RiskLevel,
			CreatedAt:  r.CreatedAt,
		}
	}

	return &HistoryResponse{
		Entries: entries,
		Total:   total,
		Limit:   filters.Limit,
		Offset:  filters.Offset,
	}, nil
}
