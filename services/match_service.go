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

// Score weights for trip pairing. Destination and date overlap dominate;
// shared activities break ties.
const (
	sameDestinationWeight  = 0.4
	overlappingDatesWeight = 0.4
	activitiesWeight       = 0.2
)

// MatchService scores a traveler's trip against other travelers' public
// trips and records the pairings.
type MatchService struct {
	Dynamo *DynamoService
	Trips  *TripService
}

// FindMatchesForTrip computes matches for a trip owned by the caller
// against every public trip by another traveler, stores the scored
// pairings, and returns them best first. Zero-score pairings are skipped.
func (ms *MatchService) FindMatchesForTrip(ctx context.Context, identity Identity, tripID string) ([]models.TripMatch, error) {
	trip, err := ms.Trips.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !Can(identity, ActionRead, EntityTripMatch, trip.UserID) || trip.UserID != identity.UserID {
		return nil, ErrForbidden
	}

	filter := "isPublic = :public AND userId <> :me"
	values := map[string]types.AttributeValue{
		":public": &types.AttributeValueMemberBOOL{Value: true},
		":me":     &types.AttributeValueMemberS{Value: identity.UserID},
	}
	items, err := ms.Dynamo.ScanItems(ctx, models.TripsTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to scan candidate trips: %w", err)
	}

	var candidates []models.Trip
	if err := attributevalue.UnmarshalListOfMaps(items, &candidates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate trips: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	matches := []models.TripMatch{}
	for _, candidate := range candidates {
		match := ScoreTripPair(*trip, candidate)
		if match.MatchScore == 0 {
			continue
		}
		match.ID = uuid.NewString()
		match.CreatedAt = now

		if err := ms.Dynamo.PutItem(ctx, models.TripMatchesTable, match); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches, nil
}

// ScoreTripPair scores how compatible two trips are: same destination
// country, overlapping date ranges, and the shared fraction of declared
// activities.
func ScoreTripPair(trip, candidate models.Trip) models.TripMatch {
	match := models.TripMatch{
		TripID:        trip.ID,
		MatchedTripID: candidate.ID,
		UserID:        trip.UserID,
		MatchedUserID: candidate.UserID,
	}

	var factors []string
	if trip.Country != "" && trip.Country == candidate.Country {
		match.SameDestination = true
		match.MatchScore += sameDestinationWeight
		factors = append(factors, "same destination")
	}
	if datesOverlap(trip.StartDate, trip.EndDate, candidate.StartDate, candidate.EndDate) {
		match.OverlappingDates = true
		match.MatchScore += overlappingDatesWeight
		factors = append(factors, "overlapping dates")
	}

	common := commonStrings(trip.Activities, candidate.Activities)
	if len(common) > 0 {
		match.CommonActivities = common
		larger := len(trip.Activities)
		if len(candidate.Activities) > larger {
			larger = len(candidate.Activities)
		}
		match.MatchScore += activitiesWeight * float64(len(common)) / float64(larger)
		factors = append(factors, "shared activities")
	}

	match.CompatibilityFactors = factors
	return match
}

// datesOverlap reports whether the two closed date ranges intersect.
// Unparseable dates never overlap.
func datesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, err1 := time.Parse(tripDateLayout, aStart)
	ae, err2 := time.Parse(tripDateLayout, aEnd)
	bs, err3 := time.Parse(tripDateLayout, bStart)
	be, err4 := time.Parse(tripDateLayout, bEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return !as.After(be) && !bs.After(ae)
}

func commonStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	var common []string
	for _, v := range b {
		if seen[v] {
			common = append(common, v)
			seen[v] = false
		}
	}
	return common
}
