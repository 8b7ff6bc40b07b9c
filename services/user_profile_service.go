package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// GetOrCreateProfile returns the profile belonging to identity, creating one
// with defaults derived from the identity's attributes when none exists yet.
func (ups *UserProfileService) GetOrCreateProfile(ctx context.Context, identity Identity, account *models.Account) (*models.UserProfile, error) {
	profile, err := ups.findByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	username := "traveler"
	firstName, lastName := "", ""
	if account != nil {
		if account.Username != "" {
			username = account.Username
		}
		firstName = account.FirstName
		lastName = account.LastName
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created := models.UserProfile{
		ID:          uuid.NewString(),
		UserID:      identity.UserID,
		Username:    username,
		Email:       identity.Email,
		FirstName:   firstName,
		LastName:    lastName,
		Interests:   []string{},
		TravelStyle: models.TravelStyleAdventure,
		IsVerified:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, created); err != nil {
		return nil, err
	}

	log.Printf("Created initial profile for user %s", identity.UserID)
	return &created, nil
}

// GetProfile retrieves a profile by its record id. Any authenticated
// identity may read profiles.
func (ups *UserProfileService) GetProfile(ctx context.Context, identity Identity, id string) (*models.UserProfile, error) {
	if !Can(identity, ActionRead, EntityUserProfile, "") {
		return nil, ErrForbidden
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile stores the full edit draft over the identity's own profile
// and returns the record as re-read from the table.
func (ups *UserProfileService) UpdateProfile(ctx context.Context, identity Identity, draft models.UserProfile) (*models.UserProfile, error) {
	existing, err := ups.findByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}
	if !Can(identity, ActionUpdate, EntityUserProfile, existing.UserID) {
		return nil, ErrForbidden
	}

	if draft.TravelStyle != "" && !models.ValidTravelStyle(draft.TravelStyle) {
		return nil, fmt.Errorf("%w: invalid travel style %q", ErrInvalidInput, draft.TravelStyle)
	}

	// The edit form submits the whole draft; identity and audit fields
	// stay server-controlled.
	draft.ID = existing.ID
	draft.UserID = existing.UserID
	draft.Username = existing.Username
	draft.Email = existing.Email
	draft.IsVerified = existing.IsVerified
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, draft); err != nil {
		return nil, err
	}
	return ups.findByUserID(ctx, identity.UserID)
}

// ToggleInterest adds interest to the list when absent and removes it when
// present. Unknown interests outside the fixed vocabulary are ignored.
func ToggleInterest(interests []string, interest string) []string {
	known := false
	for _, candidate := range models.AvailableInterests {
		if candidate == interest {
			known = true
			break
		}
	}
	if !known {
		return interests
	}

	for i, existing := range interests {
		if existing == interest {
			return append(append([]string{}, interests[:i]...), interests[i+1:]...)
		}
	}
	return append(append([]string{}, interests...), interest)
}

func (ups *UserProfileService) findByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	filter := "userId = :userId"
	values := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := ups.Dynamo.ScanItems(ctx, models.UserProfilesTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile for user %s: %w", userID, err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}
