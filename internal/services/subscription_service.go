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

type ActivateSubscriptionRequest struct {
	Amount     float64 `json:"amount" validate:"required,min=0"`
	PaymentRef string  `json:"payment_ref" validate:"required,max=100"`
}

type SubscriptionResponse struct {
	UserID       uint       `json:"user_id"`
	IsSubscribed bool       `json:"is_subscribed"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
}

// SubscriptionService records the completed one-time payment and flips the
// user's access flag. The payment itself is processed by an external
// gateway; this service only consumes its confirmation.
type SubscriptionService interface {
	Activate(ctx context.Context, userID uint, req *ActivateSubscriptionRequest) (*SubscriptionResponse, error)
	Status(ctx context.Context, userID uint) (*SubscriptionResponse, error)
}

type subscriptionService struct {
	users     repositories.UserRepository
	publisher events.EventPublisher
	validator *utils.Validator
	logger    utils.Logger
	clock     func() time.Time
}

func NewSubscriptionService(
	users repositories.UserRepository,
	publisher events.EventPublisher,
	validator *utils.Validator,
	logger utils.Logger,
	clock func() time.Time,
) SubscriptionService {
	if clock == nil {
		clock = time.Now
	}
	return &subscriptionService{
		users:     users,
		publisher: publisher,
		validator: validator,
		logger:    logger,
		clock:     clock,
	}
}

func (s *subscriptionService) Activate(ctx context.Context, userID uint, req *ActivateSubscriptionRequest) (*SubscriptionResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.IsSubscribed {
		return nil, NewBusinessRuleError("subscription_already_active",
			"subscription is already active for this user",
			map[string]interface{}{"user_id": userID})
	}

	sub := &models.Subscription{
		UserID:     userID,
		Amount:     req.Amount,
		PaymentRef: req.PaymentRef,
		Status:     models.SubscriptionCompleted,
	}
	if err := s.users.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}
	if err := s.users.MarkSubscribed(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark user subscribed: %w", err)
	}

	now := s.clock()
	s.logger.Info("Subscription activated", "user_id", userID, "payment_ref", req.PaymentRef)
	if err := s.publisher.Publish(ctx, events.NewSubscriptionActivatedEvent(sub, now)); err != nil {
		s.logger.Error("Failed to publish subscription event", "user_id", userID, "error", err)
	}

	return &SubscriptionResponse{
		UserID:       userID,
		IsSubscribed: true,
		SubscribedAt: &now,
	}, nil
}

func (s *subscriptionService) Status(ctx context.Context, userID uint) (*SubscriptionResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &SubscriptionResponse{
		UserID:       user.ID,
		IsSubscribed: user.IsSubscribed,
		SubscribedAt: user.SubscribedAt,
	}, nil
}
