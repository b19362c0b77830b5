package models

import "time"

// MedalCode is a stable identifier for an awardable medal.
type MedalCode string

const (
	MedalFirstTest   MedalCode = "first_test"
	MedalHighScorer  MedalCode = "high_scorer"
	MedalWeekStreak  MedalCode = "week_streak"
	MedalAllRounder  MedalCode = "all_rounder"
	MedalComebackKid MedalCode = "comeback_kid"
)

type Medal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_medals_user_code"`
	Code      MedalCode `json:"code" gorm:"not null;size:30;uniqueIndex:idx_medals_user_code"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	AwardedAt time.Time `json:"awarded_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (Medal) TableName() string {
	return "medals"
}

// Streak tracks consecutive practice days. All date arithmetic lives in the
// service layer; the scoring engines are clock-free.
type Streak struct {
	UserID           uint      `json:"user_id" gorm:"primaryKey"`
	Current          int       `json:"current" gorm:"default:0"`
	Longest          int       `json:"longest" gorm:"default:0"`
	LastPracticeDate time.Time `json:"last_practice_date"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Streak) TableName() string {
	return "streaks"
}
