package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"gorm.io/gorm"
)

type UserPostgreSQL struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{db: db}
}

func (u UserPostgreSQL) Create(ctx context.Context, user *models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u UserPostgreSQL) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u UserPostgreSQL) GetByCasdoorID(ctx context.Context, casdoorID string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("casdoor_id = ?", casdoorID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u UserPostgreSQL) GetOrCreateByCasdoorID(ctx context.Context, casdoorID, email, fullName string) (*models.User, error) {
	user, err := u.GetByCasdoorID(ctx, casdoorID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		CasdoorID: casdoorID,
		Email:     email,
		FullName:  fullName,
	}
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (u UserPostgreSQL) MarkSubscribed(ctx context.Context, userID uint) error {
	now := time.Now()
	return u.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_subscribed": true,
			"subscribed_at": now,
		}).Error
}

func (u UserPostgreSQL) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	return u.db.WithContext(ctx).Create(sub).Error
}

// ===== GAMIFICATION =====

type GamificationPostgreSQL struct {
	db *gorm.DB
}

func NewGamificationPostgreSQL(db *gorm.DB) repositories.GamificationRepository {
	return &GamificationPostgreSQL{db: db}
}

func (g GamificationPostgreSQL) GetStreak(ctx context.Context, userID uint) (*models.Streak, error) {
	var streak models.Streak
	if err := g.db.WithContext(ctx).Where("user_id = ?", userID).First(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}

func (g GamificationPostgreSQL) SaveStreak(ctx context.Context, streak *models.Streak) error {
	return g.db.WithContext(ctx).Save(streak).Error
}

func (g GamificationPostgreSQL) AwardMedal(ctx context.Context, medal *models.Medal) error {
	return g.db.WithContext(ctx).Create(medal).Error
}

func (g GamificationPostgreSQL) HasMedal(ctx context.Context, userID uint, code models.MedalCode) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).
		Model(&models.Medal{}).
		Where("user_id = ? AND code = ?", userID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (g GamificationPostgreSQL) ListMedals(ctx context.Context, userID uint) ([]*models.Medal, error) {
	var medals []*models.Medal
	if err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Find(&medals).Error; err != nil {
		return nil, err
	}
	return medals, nil
}
