package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// SubscriptionService manages plan tiers. Subscriptions are owner-only:
// nobody else can read them.
type SubscriptionService struct {
	Dynamo *DynamoService
}

// GetSubscription returns the caller's subscription, or a Free-tier
// placeholder when none is stored.
func (ss *SubscriptionService) GetSubscription(ctx context.Context, identity Identity) (*models.Subscription, error) {
	if identity.UserID == "" {
		return nil, ErrForbidden
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: identity.UserID},
	}
	item, err := ss.Dynamo.GetItem(ctx, models.SubscriptionsTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return &models.Subscription{
			UserID:   identity.UserID,
			PlanType: models.PlanFree,
			Status:   models.SubscriptionActive,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var subscription models.Subscription
	if err := attributevalue.UnmarshalMap(item, &subscription); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
	}
	if !Can(identity, ActionRead, EntitySubscription, subscription.UserID) {
		return nil, ErrForbidden
	}
	return &subscription, nil
}

// Subscribe stores a plan tier for the caller, replacing any previous one.
func (ss *SubscriptionService) Subscribe(ctx context.Context, identity Identity, planType, paymentMethod string) (*models.Subscription, error) {
	if !Can(identity, ActionCreate, EntitySubscription, identity.UserID) {
		return nil, ErrForbidden
	}
	if !models.ValidSubscriptionPlan(planType) {
		return nil, fmt.Errorf("%w: invalid subscription plan %q", ErrInvalidInput, planType)
	}

	now := time.Now().UTC()
	subscription := models.Subscription{
		ID:            uuid.NewString(),
		UserID:        identity.UserID,
		PlanType:      planType,
		Status:        models.SubscriptionActive,
		StartDate:     now.Format("2006-01-02"),
		Currency:      "USD",
		PaymentMethod: paymentMethod,
		AutoRenew:     true,
		CreatedAt:     now.Format(time.RFC3339),
		UpdatedAt:     now.Format(time.RFC3339),
	}
	if err := ss.Dynamo.PutItem(ctx, models.SubscriptionsTable, subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

// CancelSubscription marks the caller's subscription cancelled.
func (ss *SubscriptionService) CancelSubscription(ctx context.Context, identity Identity) (*models.Subscription, error) {
	if identity.UserID == "" {
		return nil, ErrForbidden
	}

	updateExpression := "SET #status = :cancelled, autoRenew = :off, updatedAt = :now"
	updated, err := ss.Dynamo.UpdateItem(ctx, models.SubscriptionsTable, updateExpression,
		map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: identity.UserID},
		},
		map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: models.SubscriptionCancelled},
			":off":       &types.AttributeValueMemberBOOL{Value: false},
			":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return nil, err
	}

	var subscription models.Subscription
	if err := attributevalue.UnmarshalMap(updated, &subscription); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
	}
	return &subscription, nil
}
