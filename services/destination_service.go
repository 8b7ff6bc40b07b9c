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

// DestinationService manages the curated destination catalog. Reads are
// open to any authenticated traveler; writes require the admin group.
type DestinationService struct {
	Dynamo *DynamoService
}

// ListDestinations returns the catalog, optionally filtered by category
// and/or country, highest rated first.
func (dsv *DestinationService) ListDestinations(ctx context.Context, identity Identity, category, country string) ([]models.Destination, error) {
	if !Can(identity, ActionRead, EntityDestination, "") {
		return nil, ErrForbidden
	}

	filter := ""
	values := map[string]types.AttributeValue{}
	if category != "" {
		if !models.ValidDestinationCategory(category) {
			return nil, fmt.Errorf("%w: invalid destination category %q", ErrInvalidInput, category)
		}
		filter = "category = :category"
		values[":category"] = &types.AttributeValueMemberS{Value: category}
	}
	if country != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "country = :country"
		values[":country"] = &types.AttributeValueMemberS{Value: country}
	}
	if filter == "" {
		values = nil
	}

	items, err := dsv.Dynamo.ScanItems(ctx, models.DestinationsTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	var destinations []models.Destination
	if err := attributevalue.UnmarshalListOfMaps(items, &destinations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal destinations: %w", err)
	}

	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].Rating > destinations[j].Rating
	})
	if destinations == nil {
		destinations = []models.Destination{}
	}
	return destinations, nil
}

// GetDestination retrieves one catalog entry by id.
func (dsv *DestinationService) GetDestination(ctx context.Context, identity Identity, id string) (*models.Destination, error) {
	if !Can(identity, ActionRead, EntityDestination, "") {
		return nil, ErrForbidden
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	item, err := dsv.Dynamo.GetItem(ctx, models.DestinationsTable, key)
	if err != nil {
		return nil, err
	}

	var destination models.Destination
	if err := attributevalue.UnmarshalMap(item, &destination); err != nil {
		return nil, fmt.Errorf("failed to unmarshal destination: %w", err)
	}
	return &destination, nil
}

// CreateDestination adds a catalog entry. Admin only.
func (dsv *DestinationService) CreateDestination(ctx context.Context, identity Identity, destination models.Destination) (*models.Destination, error) {
	if !Can(identity, ActionCreate, EntityDestination, "") {
		return nil, ErrForbidden
	}
	if destination.Name == "" || destination.Country == "" || destination.Region == "" {
		return nil, fmt.Errorf("%w: destination name, country and region are required", ErrInvalidInput)
	}
	if destination.Category != "" && !models.ValidDestinationCategory(destination.Category) {
		return nil, fmt.Errorf("%w: invalid destination category %q", ErrInvalidInput, destination.Category)
	}
	if destination.Difficulty != "" && !models.ValidDifficulty(destination.Difficulty) {
		return nil, fmt.Errorf("%w: invalid difficulty %q", ErrInvalidInput, destination.Difficulty)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	destination.ID = uuid.NewString()
	destination.Rating = 0
	destination.ReviewCount = 0
	destination.CreatedAt = now
	destination.UpdatedAt = now

	if err := dsv.Dynamo.PutItem(ctx, models.DestinationsTable, destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// UpdateDestination stores the full edit draft over an existing catalog
// entry. Admin only; identity, rating aggregate and audit fields stay
// server-controlled.
func (dsv *DestinationService) UpdateDestination(ctx context.Context, identity Identity, id string, draft models.Destination) (*models.Destination, error) {
	if !Can(identity, ActionUpdate, EntityDestination, "") {
		return nil, ErrForbidden
	}
	if draft.Name == "" || draft.Country == "" || draft.Region == "" {
		return nil, fmt.Errorf("%w: destination name, country and region are required", ErrInvalidInput)
	}
	if draft.Category != "" && !models.ValidDestinationCategory(draft.Category) {
		return nil, fmt.Errorf("%w: invalid destination category %q", ErrInvalidInput, draft.Category)
	}
	if draft.Difficulty != "" && !models.ValidDifficulty(draft.Difficulty) {
		return nil, fmt.Errorf("%w: invalid difficulty %q", ErrInvalidInput, draft.Difficulty)
	}

	existing, err := dsv.GetDestination(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	draft.ID = existing.ID
	draft.Rating = existing.Rating
	draft.ReviewCount = existing.ReviewCount
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := dsv.Dynamo.PutItem(ctx, models.DestinationsTable, draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteDestination removes a catalog entry. Admin only.
func (dsv *DestinationService) DeleteDestination(ctx context.Context, identity Identity, id string) error {
	if !Can(identity, ActionDelete, EntityDestination, "") {
		return ErrForbidden
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	return dsv.Dynamo.DeleteItem(ctx, models.DestinationsTable, key)
}

// Seed loads destinations into the catalog, skipping ids that already
// exist. Used to populate a fresh environment with the deck dataset.
func (dsv *DestinationService) Seed(ctx context.Context, destinations []models.Destination) {
	for _, destination := range destinations {
		if destination.CreatedAt == "" {
			destination.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		}
		err := dsv.Dynamo.PutItemIfAbsent(ctx, models.DestinationsTable, "id", destination)
		if err != nil && err != ErrConditionFailed {
			log.Printf("Failed to seed destination %q: %v", destination.Name, err)
		}
	}
}

// applyReviewRating folds a new review rating into the destination's
// aggregate.
func (dsv *DestinationService) applyReviewRating(ctx context.Context, destinationID string, rating int) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: destinationID},
	}
	item, err := dsv.Dynamo.GetItem(ctx, models.DestinationsTable, key)
	if err != nil {
		return err
	}

	var destination models.Destination
	if err := attributevalue.UnmarshalMap(item, &destination); err != nil {
		return fmt.Errorf("failed to unmarshal destination: %w", err)
	}

	total := destination.Rating*float64(destination.ReviewCount) + float64(rating)
	destination.ReviewCount++
	destination.Rating = total / float64(destination.ReviewCount)

	updateExpression := "SET rating = :rating, reviewCount = :count, updatedAt = :now"
	_, err = dsv.Dynamo.UpdateItem(ctx, models.DestinationsTable, updateExpression, key,
		map[string]types.AttributeValue{
			":rating": &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", destination.Rating)},
			":count":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", destination.ReviewCount)},
			":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		nil,
	)
	return err
}
