package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ReviewService manages destination reviews
type ReviewService struct {
	Dynamo       *DynamoService
	Destinations *DestinationService
}

// CreateReview stores a review by the caller and folds its rating into the
// destination aggregate.
func (rs *ReviewService) CreateReview(ctx context.Context, identity Identity, review models.Review) (*models.Review, error) {
	if !Can(identity, ActionCreate, EntityReview, identity.UserID) {
		return nil, ErrForbidden
	}
	if review.DestinationID == "" || review.Content == "" {
		return nil, fmt.Errorf("%w: review destination and content are required", ErrInvalidInput)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: review rating must be between 1 and 5", ErrInvalidInput)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	review.ID = uuid.NewString()
	review.UserID = identity.UserID
	review.IsVerified = false
	review.HelpfulCount = 0
	review.CreatedAt = now
	review.UpdatedAt = now

	if err := rs.Dynamo.PutItem(ctx, models.ReviewsTable, review); err != nil {
		return nil, err
	}

	if err := rs.Destinations.applyReviewRating(ctx, review.DestinationID, review.Rating); err != nil {
		log.Printf("Failed to update rating aggregate for destination %s: %v", review.DestinationID, err)
	}
	return &review, nil
}

// ListReviewsByDestination returns a destination's reviews, newest first.
func (rs *ReviewService) ListReviewsByDestination(ctx context.Context, identity Identity, destinationID string) ([]models.Review, error) {
	if !Can(identity, ActionRead, EntityReview, "") {
		return nil, ErrForbidden
	}

	filter := "destinationId = :destinationId"
	values := map[string]types.AttributeValue{
		":destinationId": &types.AttributeValueMemberS{Value: destinationID},
	}
	items, err := rs.Dynamo.ScanItems(ctx, models.ReviewsTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	var reviews []models.Review
	if err := attributevalue.UnmarshalListOfMaps(items, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// DeleteReview removes a review owned by the caller.
func (rs *ReviewService) DeleteReview(ctx context.Context, identity Identity, reviewID string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: reviewID},
	}
	item, err := rs.Dynamo.GetItem(ctx, models.ReviewsTable, key)
	if err != nil {
		return err
	}

	var review models.Review
	if err := attributevalue.UnmarshalMap(item, &review); err != nil {
		return fmt.Errorf("failed to unmarshal review: %w", err)
	}
	if !Can(identity, ActionDelete, EntityReview, review.UserID) {
		return ErrForbidden
	}
	return rs.Dynamo.DeleteItem(ctx, models.ReviewsTable, key)
}
