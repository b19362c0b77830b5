package events

import (
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/google/uuid"
)

// EventType represents the domain events emitted by the service.
type EventType string

const (
	// Evaluation events
	EventEvaluationCompleted EventType = "evaluation.completed"

	// Gamification events
	EventMedalAwarded   EventType = "medal.awarded"
	EventStreakExtended EventType = "streak.extended"

	// Subscription events
	EventSubscriptionActivated EventType = "subscription.activated"
)

// Event is the envelope shared by all published events.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

const eventSource = "readiness-service"

// EvaluationCompletedEvent is emitted after every persisted evaluation.
type EvaluationCompletedEvent struct {
	ResultID    uint              `json:"result_id"`
	UserID      uint              `json:"user_id"`
	Module      models.TestModule `json:"module"`
	Score       float64           `json:"score"`
	MaxScore    float64           `json:"max_score"`
	Percentage  float64           `json:"percentage"`
	RiskLevel   string            `json:"risk_level"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
}

type MedalAwardedEvent struct {
	UserID    uint             `json:"user_id"`
	Code      models.MedalCode `json:"code"`
	Name      string           `json:"name"`
	AwardedAt time.Time        `json:"awarded_at"`
}

type StreakExtendedEvent struct {
	UserID  uint `json:"user_id"`
	Current int  `json:"current"`
	Longest int  `json:"longest"`
}

type SubscriptionActivatedEvent struct {
	UserID      uint      `json:"user_id"`
	Amount      float64   `json:"amount"`
	PaymentRef  string    `json:"payment_ref"`
	ActivatedAt time.Time `json:"activated_at"`
}

// Event factory functions

func NewEvaluationCompletedEvent(result *models.TestResult) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      EventEvaluationCompleted,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data: EvaluationCompletedEvent{
			ResultID:    result.ID,
			UserID:      result.UserID,
			Module:      result.Module,
			Score:       result.Score,
			MaxScore:    result.MaxScore,
			Percentage:  result.Percentage,
			RiskLevel:   result.RiskLevel,
			EvaluatedAt: result.CreatedAt,
		},
	}
}

func NewMedalAwardedEvent(medal *models.Medal) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      EventMedalAwarded,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data: MedalAwardedEvent{
			UserID:    medal.UserID,
			Code:      medal.Code,
			Name:      medal.Name,
			AwardedAt: medal.AwardedAt,
		},
	}
}

func NewStreakExtendedEvent(streak *models.Streak) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      EventStreakExtended,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data: StreakExtendedEvent{
			UserID:  streak.UserID,
			Current: streak.Current,
			Longest: streak.Longest,
		},
	}
}

func NewSubscriptionActivatedEvent(sub *models.Subscription, activatedAt time.Time) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      EventSubscriptionActivated,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data: SubscriptionActivatedEvent{
			UserID:      sub.UserID,
			Amount:      sub.Amount,
			PaymentRef:  sub.PaymentRef,
			ActivatedAt: activatedAt,
		},
	}
}
