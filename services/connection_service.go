package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ConnectionService manages the directional relations between travelers
type ConnectionService struct {
	Dynamo   *DynamoService
	Profiles *UserProfileService
}

// ConnectionWithProfile pairs a connection with the counterpart's profile
// for the connection list view.
type ConnectionWithProfile struct {
	models.Connection
	Counterpart *models.UserProfile `json:"counterpart,omitempty"`
}

// ListConnections returns every connection the caller participates in,
// either direction, optionally filtered by a case-insensitive name query
// matched against the counterpart's names.
func (cns *ConnectionService) ListConnections(ctx context.Context, identity Identity, nameQuery string) ([]ConnectionWithProfile, error) {
	if identity.UserID == "" {
		return nil, ErrForbidden
	}

	filter := "fromUserId = :me OR toUserId = :me"
	values := map[string]types.AttributeValue{
		":me": &types.AttributeValueMemberS{Value: identity.UserID},
	}
	items, err := cns.Dynamo.ScanItems(ctx, models.ConnectionsTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	var connections []models.Connection
	if err := attributevalue.UnmarshalListOfMaps(items, &connections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(nameQuery))
	result := []ConnectionWithProfile{}
	for _, connection := range connections {
		counterpartID := connection.ToUserID
		if counterpartID == identity.UserID {
			counterpartID = connection.FromUserID
		}

		counterpart, err := cns.Profiles.findByUserID(ctx, counterpartID)
		if err != nil {
			return nil, err
		}
		if query != "" && !matchesName(counterpart, query) {
			continue
		}
		result = append(result, ConnectionWithProfile{Connection: connection, Counterpart: counterpart})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

// CreateConnection opens a pending connection from the caller to another
// traveler.
func (cns *ConnectionService) CreateConnection(ctx context.Context, identity Identity, toUserID, reason string) (*models.Connection, error) {
	if !Can(identity, ActionCreate, EntityConnection, identity.UserID) {
		return nil, ErrForbidden
	}
	if toUserID == "" || toUserID == identity.UserID {
		return nil, fmt.Errorf("%w: invalid connection target", ErrInvalidInput)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	connection := models.Connection{
		ID:               uuid.NewString(),
		FromUserID:       identity.UserID,
		ToUserID:         toUserID,
		Status:           models.ConnectionStatusPending,
		ConnectionReason: reason,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := cns.Dynamo.PutItem(ctx, models.ConnectionsTable, connection); err != nil {
		return nil, err
	}
	return &connection, nil
}

// UpdateConnectionStatus moves a connection the caller participates in to a
// new status. Only the receiving side accepts or declines; either side may
// block.
func (cns *ConnectionService) UpdateConnectionStatus(ctx context.Context, identity Identity, connectionID, status string) (*models.Connection, error) {
	if !models.ValidConnectionStatus(status) {
		return nil, fmt.Errorf("%w: invalid connection status %q", ErrInvalidInput, status)
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: connectionID},
	}
	item, err := cns.Dynamo.GetItem(ctx, models.ConnectionsTable, key)
	if err != nil {
		return nil, err
	}

	var connection models.Connection
	if err := attributevalue.UnmarshalMap(item, &connection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connection: %w", err)
	}

	isParticipant := identity.UserID == connection.FromUserID || identity.UserID == connection.ToUserID
	if !isParticipant {
		return nil, ErrForbidden
	}
	switch status {
	case models.ConnectionStatusAccepted, models.ConnectionStatusDeclined:
		if identity.UserID != connection.ToUserID {
			return nil, ErrForbidden
		}
	}

	updateExpression := "SET #status = :status, updatedAt = :now"
	updated, err := cns.Dynamo.UpdateItem(ctx, models.ConnectionsTable, updateExpression, key,
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
			":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return nil, err
	}

	var result models.Connection
	if err := attributevalue.UnmarshalMap(updated, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connection: %w", err)
	}
	return &result, nil
}

func matchesName(profile *models.UserProfile, loweredQuery string) bool {
	if profile == nil {
		return false
	}
	full := strings.ToLower(strings.TrimSpace(profile.FirstName + " " + profile.LastName))
	return strings.Contains(full, loweredQuery) || strings.Contains(strings.ToLower(profile.Username), loweredQuery)
}
