package services

import (
	"context"
	"math"
	"testing"

	"github.com/bowale01/spirited-travels-africa/models"
)

func TestScoreTripPairFullMatch(t *testing.T) {
	trip := models.Trip{
		ID: "t1", UserID: "u1", Country: "Kenya",
		StartDate: "2026-06-01", EndDate: "2026-06-10",
		Activities: []string{"Safari", "Hiking"},
	}
	candidate := models.Trip{
		ID: "t2", UserID: "u2", Country: "Kenya",
		StartDate: "2026-06-05", EndDate: "2026-06-15",
		Activities: []string{"Safari", "Hiking"},
	}

	match := ScoreTripPair(trip, candidate)
	if !match.SameDestination || !match.OverlappingDates {
		t.Fatalf("expected destination and date match, got %+v", match)
	}
	if math.Abs(match.MatchScore-1.0) > 1e-9 {
		t.Fatalf("expected full score 1.0, got %f", match.MatchScore)
	}
	if len(match.CommonActivities) != 2 {
		t.Fatalf("expected 2 common activities, got %v", match.CommonActivities)
	}
}

func TestScoreTripPairPartialActivities(t *testing.T) {
	trip := models.Trip{
		ID: "t1", Country: "Kenya",
		StartDate: "2026-06-01", EndDate: "2026-06-10",
		Activities: []string{"Safari", "Hiking", "Food", "Music"},
	}
	candidate := models.Trip{
		ID: "t2", Country: "Tanzania",
		StartDate: "2026-09-01", EndDate: "2026-09-10",
		Activities: []string{"Safari"},
	}

	match := ScoreTripPair(trip, candidate)
	if match.SameDestination || match.OverlappingDates {
		t.Fatalf("expected no destination or date match, got %+v", match)
	}
	// One shared activity out of the larger list of four.
	want := 0.2 * 1.0 / 4.0
	if math.Abs(match.MatchScore-want) > 1e-9 {
		t.Fatalf("expected score %f, got %f", want, match.MatchScore)
	}
}

func TestScoreTripPairNoOverlap(t *testing.T) {
	trip := models.Trip{ID: "t1", Country: "Kenya", StartDate: "2026-06-01", EndDate: "2026-06-10"}
	candidate := models.Trip{ID: "t2", Country: "Ghana", StartDate: "2027-01-01", EndDate: "2027-01-05"}

	if match := ScoreTripPair(trip, candidate); match.MatchScore != 0 {
		t.Fatalf("expected zero score, got %+v", match)
	}
}

func TestDatesOverlap(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"2026-06-01", "2026-06-10", "2026-06-10", "2026-06-20", true},
		{"2026-06-01", "2026-06-10", "2026-06-11", "2026-06-20", false},
		{"2026-06-05", "2026-06-06", "2026-06-01", "2026-06-10", true},
		{"bad", "2026-06-10", "2026-06-01", "2026-06-10", false},
	}
	for i, c := range cases {
		if got := datesOverlap(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
			t.Fatalf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestFindMatchesForTripSkipsZeroScores(t *testing.T) {
	dynamo, _ := newTestDynamo()
	trips := &TripService{Dynamo: dynamo}
	matches := &MatchService{Dynamo: dynamo, Trips: trips}
	ctx := context.Background()
	me := testIdentity("me")
	other := testIdentity("other")

	mine, err := trips.CreateTrip(ctx, me, models.Trip{
		Title: "Safari", Country: "Kenya",
		StartDate: "2026-06-01", EndDate: "2026-06-10",
		Activities: []string{"Safari"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := trips.CreateTrip(ctx, other, models.Trip{
		Title: "Safari too", Country: "Kenya",
		StartDate: "2026-06-05", EndDate: "2026-06-12",
		Activities: []string{"Safari"},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := trips.CreateTrip(ctx, other, models.Trip{
		Title: "Elsewhere", Country: "Morocco",
		StartDate: "2027-01-01", EndDate: "2027-01-10",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := matches.FindMatchesForTrip(ctx, me, mine.ID)
	if err != nil {
		t.Fatalf("matching failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(found), found)
	}
	if found[0].MatchedUserID != other.UserID {
		t.Fatalf("unexpected matched user %q", found[0].MatchedUserID)
	}
}

func TestFindMatchesForTripOwnerOnly(t *testing.T) {
	dynamo, _ := newTestDynamo()
	trips := &TripService{Dynamo: dynamo}
	matches := &MatchService{Dynamo: dynamo, Trips: trips}
	ctx := context.Background()
	me := testIdentity("me")

	mine, err := trips.CreateTrip(ctx, me, models.Trip{
		Title: "Safari", Country: "Kenya",
		StartDate: "2026-06-01", EndDate: "2026-06-10",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := matches.FindMatchesForTrip(ctx, testIdentity("stranger"), mine.ID); err == nil {
		t.Fatal("only the trip owner may request matches")
	}
}
