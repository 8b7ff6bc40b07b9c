package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bowale01/spirited-travels-africa/models"
)

func TestGetOrCreateProfileDefaults(t *testing.T) {
	dynamo, _ := newTestDynamo()
	profiles := &UserProfileService{Dynamo: dynamo}
	identity := testIdentity("user-1")

	profile, err := profiles.GetOrCreateProfile(context.Background(), identity, nil)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	if profile.Username != "traveler" {
		t.Fatalf("expected fallback username, got %q", profile.Username)
	}
	if profile.TravelStyle != models.TravelStyleAdventure {
		t.Fatalf("expected Adventure default, got %q", profile.TravelStyle)
	}
	if profile.UserID != identity.UserID || profile.Email != identity.Email {
		t.Fatalf("profile not bound to identity: %+v", profile)
	}

	again, err := profiles.GetOrCreateProfile(context.Background(), identity, nil)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.ID != profile.ID {
		t.Fatal("second call should return the same profile, not create another")
	}
}

func TestGetOrCreateProfileUsesAccountAttributes(t *testing.T) {
	dynamo, _ := newTestDynamo()
	profiles := &UserProfileService{Dynamo: dynamo}
	identity := testIdentity("user-1")
	account := &models.Account{Username: "ada", FirstName: "Ada", LastName: "Bello"}

	profile, err := profiles.GetOrCreateProfile(context.Background(), identity, account)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	if profile.Username != "ada" || profile.FirstName != "Ada" {
		t.Fatalf("account attributes not applied: %+v", profile)
	}
}

func TestUpdateProfileKeepsServerFields(t *testing.T) {
	dynamo, _ := newTestDynamo()
	profiles := &UserProfileService{Dynamo: dynamo}
	identity := testIdentity("user-1")
	ctx := context.Background()

	original, err := profiles.GetOrCreateProfile(ctx, identity, nil)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}

	draft := *original
	draft.Bio = "Exploring the continent"
	draft.Username = "hijacked"
	draft.Email = "other@example.com"
	draft.IsVerified = true

	updated, err := profiles.UpdateProfile(ctx, identity, draft)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Bio != "Exploring the continent" {
		t.Fatalf("editable field not applied: %+v", updated)
	}
	if updated.Username != original.Username || updated.Email != original.Email || updated.IsVerified {
		t.Fatalf("server-controlled fields changed: %+v", updated)
	}
}

func TestUpdateProfileRejectsUnknownTravelStyle(t *testing.T) {
	dynamo, _ := newTestDynamo()
	profiles := &UserProfileService{Dynamo: dynamo}
	identity := testIdentity("user-1")
	ctx := context.Background()

	if _, err := profiles.GetOrCreateProfile(ctx, identity, nil); err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}

	_, err := profiles.UpdateProfile(ctx, identity, models.UserProfile{TravelStyle: "Teleporting"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestToggleInterest(t *testing.T) {
	interests := ToggleInterest(nil, "Safari")
	if len(interests) != 1 || interests[0] != "Safari" {
		t.Fatalf("expected [Safari], got %v", interests)
	}

	interests = ToggleInterest(interests, "Food")
	if len(interests) != 2 {
		t.Fatalf("expected 2 interests, got %v", interests)
	}

	interests = ToggleInterest(interests, "Safari")
	if len(interests) != 1 || interests[0] != "Food" {
		t.Fatalf("toggling again should remove, got %v", interests)
	}

	if got := ToggleInterest(interests, "Quantum Physics"); len(got) != len(interests) {
		t.Fatalf("unknown interests must be ignored, got %v", got)
	}
}
