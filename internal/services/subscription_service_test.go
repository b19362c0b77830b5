package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/events"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByCasdoorID(ctx context.Context, casdoorID string) (*models.User, error) {
	args := m.Called(ctx, casdoorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetOrCreateByCasdoorID(ctx context.Context, casdoorID, email, fullName string) (*models.User, error) {
	args := m.Called(ctx, casdoorID, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) MarkSubscribed(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func newSubscriptionService(users *MockUserRepository, publisher *events.MockEventPublisher, now time.Time) SubscriptionService {
	return NewSubscriptionService(users, publisher, utils.NewValidator(), testLogger(), func() time.Time { return now })
}

func TestActivateSubscription_RecordsPaymentAndFlipsFlag(t *testing.T) {
	users := new(MockUserRepository)
	publisher := events.NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	service := newSubscriptionService(users, publisher, now)
	ctx := context.Background()

	users.On("GetByID", ctx, uint(1)).Return(&models.User{ID: 1}, nil)

	var recorded *models.Subscription
	users.On("CreateSubscription", ctx, mock.AnythingOfType("*models.Subscription")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*models.Subscription)
		}).
		Return(nil)
	users.On("MarkSubscribed", ctx, uint(1)).Return(nil)

	resp, err := service.Activate(ctx, 1, &ActivateSubscriptionRequest{
		Amount:     499,
		PaymentRef: "pay_abc123",
	})

	assert.NoError(t, err)
	assert.True(t, resp.IsSubscribed)
	assert.Equal(t, now, *resp.SubscribedAt)

	assert.Equal(t, models.SubscriptionCompleted, recorded.Status)
	assert.Equal(t, "pay_abc123", recorded.PaymentRef)

	published := publisher.PublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventSubscriptionActivated, published[0].Type)

	users.AssertExpectations(t)
}

func TestActivateSubscription_RejectsDoubleActivation(t *testing.T) {
	users := new(MockUserRepository)
	publisher := events.NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := newSubscriptionService(users, publisher, time.Now())
	ctx := context.Background()

	users.On("GetByID", ctx, uint(2)).Return(&models.User{ID: 2, IsSubscribed: true}, nil)

	_, err := service.Activate(ctx, 2, &ActivateSubscriptionRequest{
		Amount:     499,
		PaymentRef: "pay_dup",
	})

	assert.Error(t, err)
	assert.True(t, IsBusinessRule(err))
	users.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.PublishedEvents())
}

func TestActivateSubscription_RejectsMissingPaymentRef(t *testing.T) {
	users := new(MockUserRepository)
	publisher := events.NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := newSubscriptionService(users, publisher, time.Now())

	_, err := service.Activate(context.Background(), 3, &ActivateSubscriptionRequest{Amount: 499})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
