package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey          = "leaderboard:readiness"
	leaderboardDefaultLimit = 10
	leaderboardMaxLimit     = 100
)

type leaderboardService struct {
	redis  *redis.Client
	users  repositories.UserRepository
	logger utils.Logger
}

func NewLeaderboardService(redisClient *redis.Client, users repositories.UserRepository, logger utils.Logger) LeaderboardService {
	return &leaderboardService{
		redis:  redisClient,
		users:  users,
		logger: logger,
	}
}

func (s *leaderboardService) UpdateScore(ctx context.Context, userID uint, readiness float64) error {
	member := strconv.FormatUint(uint64(userID), 10)
	if err := s.redis.ZAdd(ctx, leaderboardKey, redis.Z{Score: readiness, Member: member}).Err(); err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}
	return nil
}

// Top returns the highest-ranked users plus the requesting user's own rank
// when they fall outside the page.
func (s *leaderboardService) Top(ctx context.Context, userID uint, limit int) (*LeaderboardResponse, error) {
	if limit <= 0 {
		limit = leaderboardDefaultLimit
	}
	if limit > leaderboardMaxLimit {
		limit = leaderboardMaxLimit
	}

	members, err := s.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	selfIncluded := false
	for i, m := range members {
		id, err := strconv.ParseUint(fmt.Sprint(m.Member), 10, 64)
		if err != nil {
			s.logger.Warn("Skipping malformed leaderboard member", "member", m.Member)
			continue
		}
		entry := LeaderboardEntry{
			Rank:      i + 1,
			UserID:    uint(id),
			FullName:  s.displayName(ctx, uint(id)),
			Readiness: m.Score,
		}
		if entry.UserID == userID {
			selfIncluded = true
		}
		entries = append(entries, entry)
	}

	response := &LeaderboardResponse{Entries: entries}
	if !selfIncluded {
		if self, err := s.selfEntry(ctx, userID); err == nil {
			response.Self = self
		}
	}

	return response, nil
}

func (s *leaderboardService) selfEntry(ctx context.Context, userID uint) (*LeaderboardEntry, error) {
	member := strconv.FormatUint(uint64(userID), 10)

	rank, err := s.redis.ZRevRank(ctx, leaderboardKey, member).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("failed to read rank: %w", err)
	}

	score, err := s.redis.ZScore(ctx, leaderboardKey, member).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read score: %w", err)
	}

	return &LeaderboardEntry{
		Rank:      int(rank) + 1,
		UserID:    userID,
		FullName:  s.displayName(ctx, userID),
		Readiness: score,
	}, nil
}

func (s *leaderboardService) displayName(ctx context.Context, userID uint) string {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Sprintf("Aspirant #%d", userID)
	}
	if user.FullName != "" {
		return user.FullName
	}
	return fmt.Sprintf("Aspirant #%d", userID)
}
