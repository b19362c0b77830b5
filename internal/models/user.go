package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CasdoorID string `json:"casdoor_id" gorm:"uniqueIndex;not null;size:100"`
	Email     string `json:"email" gorm:"size:255;index" validate:"omitempty,email"`
	FullName  string `json:"full_name" gorm:"size:200"`

	// Subscription gate: a single one-time payment unlocks all practice
	// modules. Payment processing happens outside this service.
	IsSubscribed bool       `json:"is_subscribed" gorm:"default:false;index"`
	SubscribedAt *time.Time `json:"subscribed_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Results []TestResult `json:"results,omitempty" gorm:"foreignKey:UserID"`
	Medals  []Medal      `json:"medals,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "Pending"
	SubscriptionCompleted SubscriptionStatus = "Completed"
	SubscriptionFailed    SubscriptionStatus = "Failed"
)

// Subscription records the one-time payment that unlocks the platform.
type Subscription struct {
	ID         uint               `json:"id" gorm:"primaryKey"`
	UserID     uint               `json:"user_id" gorm:"not null;index"`
	Amount     float64            `json:"amount" gorm:"not null" validate:"min=0"`
	PaymentRef string             `json:"payment_ref" gorm:"size:100;uniqueIndex"`
	Status     SubscriptionStatus `json:"status" gorm:"default:Pending;index"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
