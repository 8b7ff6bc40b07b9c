package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bowale01/spirited-travels-africa/models"
)

func newTestConnectionService() (*ConnectionService, *UserProfileService) {
	dynamo, _ := newTestDynamo()
	profiles := &UserProfileService{Dynamo: dynamo}
	return &ConnectionService{Dynamo: dynamo, Profiles: profiles}, profiles
}

func TestCreateConnectionStartsPending(t *testing.T) {
	connections, _ := newTestConnectionService()

	connection, err := connections.CreateConnection(context.Background(), testIdentity("alice"), "bob", "met on safari")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if connection.Status != models.ConnectionStatusPending {
		t.Fatalf("expected pending, got %q", connection.Status)
	}
	if connection.FromUserID != "alice" || connection.ToUserID != "bob" {
		t.Fatalf("participants wrong: %+v", connection)
	}
}

func TestCreateConnectionRejectsSelf(t *testing.T) {
	connections, _ := newTestConnectionService()

	_, err := connections.CreateConnection(context.Background(), testIdentity("alice"), "alice", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOnlyReceiverAcceptsConnection(t *testing.T) {
	connections, _ := newTestConnectionService()
	ctx := context.Background()
	alice := testIdentity("alice")
	bob := testIdentity("bob")

	connection, err := connections.CreateConnection(ctx, alice, "bob", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := connections.UpdateConnectionStatus(ctx, alice, connection.ID, models.ConnectionStatusAccepted); !errors.Is(err, ErrForbidden) {
		t.Fatalf("sender must not accept their own request, got %v", err)
	}
	if _, err := connections.UpdateConnectionStatus(ctx, testIdentity("carol"), connection.ID, models.ConnectionStatusBlocked); !errors.Is(err, ErrForbidden) {
		t.Fatalf("outsiders must not touch the connection, got %v", err)
	}

	accepted, err := connections.UpdateConnectionStatus(ctx, bob, connection.ID, models.ConnectionStatusAccepted)
	if err != nil {
		t.Fatalf("receiver accept failed: %v", err)
	}
	if accepted.Status != models.ConnectionStatusAccepted {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}
}

func TestListConnectionsFiltersByName(t *testing.T) {
	connections, profiles := newTestConnectionService()
	ctx := context.Background()
	alice := testIdentity("alice")

	if _, err := profiles.GetOrCreateProfile(ctx, testIdentity("bob"), &models.Account{Username: "bob", FirstName: "Bayo", LastName: "Okafor"}); err != nil {
		t.Fatalf("profile setup failed: %v", err)
	}
	if _, err := profiles.GetOrCreateProfile(ctx, testIdentity("carol"), &models.Account{Username: "carol", FirstName: "Chidinma", LastName: "Eze"}); err != nil {
		t.Fatalf("profile setup failed: %v", err)
	}
	if _, err := connections.CreateConnection(ctx, alice, "bob", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := connections.CreateConnection(ctx, alice, "carol", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := connections.ListConnections(ctx, alice, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(all))
	}

	filtered, err := connections.ListConnections(ctx, alice, "bayo")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Counterpart == nil || filtered[0].Counterpart.FirstName != "Bayo" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}
}
