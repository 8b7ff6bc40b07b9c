package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// tripDateLayout is the calendar-date format trips are stored with.
const tripDateLayout = "2006-01-02"

type TripService struct {
	Dynamo *DynamoService
}

// ListTrips returns the trips owned by userID, newest start date first.
func (ts *TripService) ListTrips(ctx context.Context, identity Identity, userID string) ([]models.Trip, error) {
	if !Can(identity, ActionRead, EntityTrip, userID) {
		return nil, ErrForbidden
	}

	filter := "userId = :userId"
	values := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	items, err := ts.Dynamo.ScanItems(ctx, models.TripsTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for user %s: %w", userID, err)
	}

	var trips []models.Trip
	if err := attributevalue.UnmarshalListOfMaps(items, &trips); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trips: %w", err)
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].StartDate > trips[j].StartDate
	})
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

// CreateTrip stores a new trip for the caller with client-supplied fields
// and server defaults.
func (ts *TripService) CreateTrip(ctx context.Context, identity Identity, trip models.Trip) (*models.Trip, error) {
	if !Can(identity, ActionCreate, EntityTrip, identity.UserID) {
		return nil, ErrForbidden
	}
	if trip.Title == "" || trip.Country == "" {
		return nil, fmt.Errorf("%w: trip title and country are required", ErrInvalidInput)
	}
	if err := validateTripDates(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}
	if trip.TripType != "" && !models.ValidTripType(trip.TripType) {
		return nil, fmt.Errorf("%w: invalid trip type %q", ErrInvalidInput, trip.TripType)
	}
	if trip.Accommodation != "" && !models.ValidAccommodation(trip.Accommodation) {
		return nil, fmt.Errorf("%w: invalid accommodation %q", ErrInvalidInput, trip.Accommodation)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	trip.ID = uuid.NewString()
	trip.UserID = identity.UserID
	trip.Status = models.TripStatusPlanning
	trip.IsPublic = true
	if trip.GroupSize <= 0 {
		trip.GroupSize = 1
	}
	if trip.Currency == "" {
		trip.Currency = "USD"
	}
	if trip.Activities == nil {
		trip.Activities = []string{}
	}
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := ts.Dynamo.PutItem(ctx, models.TripsTable, trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTripStatus moves a trip owned by the caller to a new status.
func (ts *TripService) UpdateTripStatus(ctx context.Context, identity Identity, tripID, status string) (*models.Trip, error) {
	if !models.ValidTripStatus(status) {
		return nil, fmt.Errorf("%w: invalid trip status %q", ErrInvalidInput, status)
	}

	trip, err := ts.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !Can(identity, ActionUpdate, EntityTrip, trip.UserID) {
		return nil, ErrForbidden
	}

	updateExpression := "SET #status = :status, updatedAt = :now"
	updated, err := ts.Dynamo.UpdateItem(ctx, models.TripsTable, updateExpression,
		map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: tripID},
		},
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
			":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return nil, err
	}

	var result models.Trip
	if err := attributevalue.UnmarshalMap(updated, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip: %w", err)
	}
	return &result, nil
}

// DeleteTrip removes a trip owned by the caller.
func (ts *TripService) DeleteTrip(ctx context.Context, identity Identity, tripID string) error {
	trip, err := ts.getTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if !Can(identity, ActionDelete, EntityTrip, trip.UserID) {
		return ErrForbidden
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: tripID},
	}
	return ts.Dynamo.DeleteItem(ctx, models.TripsTable, key)
}

// ListTripBuckets lists the user's trips partitioned into planned, current
// and past relative to now.
func (ts *TripService) ListTripBuckets(ctx context.Context, identity Identity, userID string, now time.Time) (*models.TripBuckets, error) {
	trips, err := ts.ListTrips(ctx, identity, userID)
	if err != nil {
		return nil, err
	}
	buckets := BucketTrips(trips, now)
	return &buckets, nil
}

// BucketTrips partitions trips by date range against now: a trip is current
// when start <= now <= end, planned when start > now, past when end < now.
// Trips with unparseable dates land in no bucket.
func BucketTrips(trips []models.Trip, now time.Time) models.TripBuckets {
	buckets := models.TripBuckets{
		Planned: []models.Trip{},
		Current: []models.Trip{},
		Past:    []models.Trip{},
	}
	for _, trip := range trips {
		start, err := time.Parse(tripDateLayout, trip.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse(tripDateLayout, trip.EndDate)
		if err != nil {
			continue
		}

		switch {
		case start.After(now):
			buckets.Planned = append(buckets.Planned, trip)
		case end.Before(now):
			buckets.Past = append(buckets.Past, trip)
		default:
			buckets.Current = append(buckets.Current, trip)
		}
	}
	return buckets
}

func validateTripDates(startDate, endDate string) error {
	start, err := time.Parse(tripDateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, startDate)
	}
	end, err := time.Parse(tripDateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, endDate)
	}
	if start.After(end) {
		return fmt.Errorf("%w: trip start date %s is after end date %s", ErrInvalidInput, startDate, endDate)
	}
	return nil
}

func (ts *TripService) getTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: tripID},
	}
	item, err := ts.Dynamo.GetItem(ctx, models.TripsTable, key)
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := attributevalue.UnmarshalMap(item, &trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip: %w", err)
	}
	return &trip, nil
}
