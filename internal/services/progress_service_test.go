package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/events"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type progressFixture struct {
	service   ProgressService
	results   *MockResultRepository
	gamif     *MockGamificationRepository
	publisher *events.MockEventPublisher
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()

	results := new(MockResultRepository)
	gamif := new(MockGamificationRepository)
	publisher := events.NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := NewProgressService(results, gamif, publisher, testLogger())

	return &progressFixture{
		service:   service,
		results:   results,
		gamif:     gamif,
		publisher: publisher,
	}
}

func (f *progressFixture) expectNoMedals(ctx context.Context, userID uint) {
	f.gamif.On("HasMedal", ctx, userID, mock.AnythingOfType("models.MedalCode")).Return(true, nil)
	f.results.On("LatestScores", ctx, userID).
		Return(map[models.TestModule]float64{}, nil)
}

func TestRecordPractice_ConsecutiveDayExtendsStreak(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 16, 8, 0, 0, 0, time.UTC)

	f.gamif.On("GetStreak", ctx, uint(1)).Return(&models.Streak{
		UserID:           1,
		Current:          3,
		Longest:          5,
		LastPracticeDate: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
	}, nil)

	var saved *models.Streak
	f.gamif.On("SaveStreak", ctx, mock.AnythingOfType("*models.Streak")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Streak)
		}).
		Return(nil)
	f.expectNoMedals(ctx, 1)

	_, err := f.service.RecordPractice(ctx, 1, models.ModuleWord, 70, now)

	assert.NoError(t, err)
	assert.Equal(t, 4, saved.Current)
	assert.Equal(t, 5, saved.Longest)
	assert.Equal(t, time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC), saved.LastPracticeDate)
	assert.Len(t, f.publisher.PublishedEvents(), 1)
	assert.Equal(t, events.EventStreakExtended, f.publisher.PublishedEvents()[0].Type)
}

func TestRecordPractice_LocalZoneClockCountsUTCDays(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	// 20:00 Sep 16 in UTC-5 is already Sep 17 in UTC, one day after the
	// stored practice date.
	now := time.Date(2025, 9, 16, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))

	f.gamif.On("GetStreak", ctx, uint(1)).Return(&models.Streak{
		UserID:           1,
		Current:          2,
		Longest:          2,
		LastPracticeDate: time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC),
	}, nil)

	var saved *models.Streak
	f.gamif.On("SaveStreak", ctx, mock.AnythingOfType("*models.Streak")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Streak)
		}).
		Return(nil)
	f.expectNoMedals(ctx, 1)

	_, err := f.service.RecordPractice(ctx, 1, models.ModulePIQ, 60, now)

	assert.NoError(t, err)
	assert.Equal(t, 3, saved.Current)
	assert.Equal(t, time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC), saved.LastPracticeDate)
}

func TestRecordPractice_SameDayLeavesStreakUntouched(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 16, 22, 0, 0, 0, time.UTC)

	f.gamif.On("GetStreak", ctx, uint(1)).Return(&models.Streak{
		UserID:           1,
		Current:          4,
		Longest:          5,
		LastPracticeDate: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
	}, nil)

	var saved *models.Streak
	f.gamif.On("SaveStreak", ctx, mock.AnythingOfType("*models.Streak")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Streak)
		}).
		Return(nil)
	f.expectNoMedals(ctx, 1)

	_, err := f.service.RecordPractice(ctx, 1, models.ModuleStory, 50, now)

	assert.NoError(t, err)
	assert.Equal(t, 4, saved.Current)
	assert.Empty(t, f.publisher.PublishedEvents())
}

func TestRecordPractice_GapResetsStreakAndAwardsComeback(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 16, 8, 0, 0, 0, time.UTC)

	f.gamif.On("GetStreak", ctx, uint(2)).Return(&models.Streak{
		UserID:           2,
		Current:          9,
		Longest:          9,
		LastPracticeDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	var saved *models.Streak
	f.gamif.On("SaveStreak", ctx, mock.AnythingOfType("*models.Streak")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Streak)
		}).
		Return(nil)

	f.gamif.On("HasMedal", ctx, uint(2), models.MedalFirstTest).Return(true, nil)
	f.gamif.On("HasMedal", ctx, uint(2), models.MedalComebackKid).Return(false, nil)
	f.gamif.On("AwardMedal", ctx, mock.AnythingOfType("*models.Medal")).Return(nil)
	f.results.On("LatestScores", ctx, uint(2)).
		Return(map[models.TestModule]float64{}, nil)

	medals, err := f.service.RecordPractice(ctx, 2, models.ModuleSituational, 60, now)

	assert.NoError(t, err)
	assert.Equal(t, 1, saved.Current)
	assert.Equal(t, 9, saved.Longest)
	assert.Len(t, medals, 1)
	assert.Equal(t, models.MedalComebackKid, medals[0].Code)
}

func TestRecordPractice_SeventhDayAwardsWeekStreak(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 16, 8, 0, 0, 0, time.UTC)

	f.gamif.On("GetStreak", ctx, uint(3)).Return(&models.Streak{
		UserID:           3,
		Current:          6,
		Longest:          6,
		LastPracticeDate: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
	}, nil)
	f.gamif.On("SaveStreak", ctx, mock.AnythingOfType("*models.Streak")).Return(nil)

	f.gamif.On("HasMedal", ctx, uint(3), models.MedalFirstTest).Return(true, nil)
	f.gamif.On("HasMedal", ctx, uint(3), models.MedalWeekStreak).Return(false, nil)
	f.gamif.On("AwardMedal", ctx, mock.AnythingOfType("*models.Medal")).Return(nil)
	f.results.On("LatestScores", ctx, uint(3)).
		Return(map[models.TestModule]float64{}, nil)

	medals, err := f.service.RecordPractice(ctx, 3, models.ModuleWord, 40, now)

	assert.NoError(t, err)
	assert.Len(t, medals, 1)
	assert.Equal(t, models.MedalWeekStreak, medals[0].Code)
}

func TestRecordPractice_AllModulesAwardAllRounder(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 9, 16, 8, 0, 0, 0, time.UTC)

	f.gamif.On("GetStreak", ctx, uint(4)).Return(&models.Streak{
		UserID:           4,
		Current:          1,
		Longest:          1,
		LastPracticeDate: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
	}, nil)
	f.gamif.On("SaveStreak", ctx, mock.AnythingOfType("*models.Streak")).Return(nil)

	f.gamif.On("HasMedal", ctx, uint(4), models.MedalFirstTest).Return(true, nil)
	f.gamif.On("HasMedal", ctx, uint(4), models.MedalAllRounder).Return(false, nil)
	f.gamif.On("AwardMedal", ctx, mock.AnythingOfType("*models.Medal")).Return(nil)
	f.results.On("LatestScores", ctx, uint(4)).
		Return(map[models.TestModule]float64{
			models.ModulePIQ:         70,
			models.ModuleSituational: 60,
			models.ModuleWord:        50,
			models.ModuleStory:       80,
		}, nil)

	medals, err := f.service.RecordPractice(ctx, 4, models.ModulePIQ, 70, now)

	assert.NoError(t, err)
	assert.Len(t, medals, 1)
	assert.Equal(t, models.MedalAllRounder, medals[0].Code)
}

func TestGetHistory_DefaultsAndModuleFilter(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	module := models.ModuleWord
	f.results.On("ListByUser", ctx, uint(1), mock.MatchedBy(func(filters repositories.ResultFilters) bool {
		return filters.Module != nil && *filters.Module == module &&
			filters.Limit == 20 && filters.SortOrder == "desc"
	})).Return([]*models.TestResult{
		{ID: 11, Module: models.ModuleWord, Score: 8, MaxScore: 12, Percentage: 67, RiskLevel: "MODERATE"},
	}, int64(1), nil)

	resp, err := f.service.GetHistory(ctx, 1, &HistoryRequest{Module: string(module)})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 20, resp.Limit)
	assert.Len(t, resp.Entries, 1)
	assert.Equal(t, uint(11), resp.Entries[0].ID)
	assert.Equal(t, models.ModuleWord, resp.Entries[0].Module)
}
