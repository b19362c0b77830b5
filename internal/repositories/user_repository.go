package repositories

import (
	"context"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
)

// UserRepository manages user accounts and their subscription flag.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByCasdoorID(ctx context.Context, casdoorID string) (*models.User, error)

	// GetOrCreateByCasdoorID resolves the local account for an external
	// identity, creating it on first login.
	GetOrCreateByCasdoorID(ctx context.Context, casdoorID, email, fullName string) (*models.User, error)

	MarkSubscribed(ctx context.Context, userID uint) error
	CreateSubscription(ctx context.Context, sub *models.Subscription) error
}

// GamificationRepository manages medals and practice streaks.
type GamificationRepository interface {
	GetStreak(ctx context.Context, userID uint) (*models.Streak, error)
	SaveStreak(ctx context.Context, streak *models.Streak) error

	AwardMedal(ctx context.Context, medal *models.Medal) error
	HasMedal(ctx context.Context, userID uint, code models.MedalCode) (bool, error)
	ListMedals(ctx context.Context, userID uint) ([]*models.Medal, error)
}
