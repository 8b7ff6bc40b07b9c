package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/middleware"
	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/routes"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gorilla/mux"
)

// memoryDynamo covers the handful of operations the handlers under test
// touch: key lookups, puts, SET updates, deletes, and filtered scans.
type memoryDynamo struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue
}

func newMemoryDynamo() *memoryDynamo {
	return &memoryDynamo{tables: make(map[string][]map[string]types.AttributeValue)}
}

func keyFor(table string) string {
	switch table {
	case models.AccountsTable, models.ConfirmationCodesTable:
		return "email"
	case models.MessagesTable:
		return "messageId"
	default:
		return "id"
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if attr, ok := item[name].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func stringValue(attr types.AttributeValue) string {
	if s, ok := attr.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (m *memoryDynamo) find(table string, key map[string]types.AttributeValue) int {
	for i, item := range m.tables[table] {
		matched := true
		for name, want := range key {
			if stringAttr(item, name) != stringValue(want) {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

func (m *memoryDynamo) GetItem(ctx context.Context, input *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index := m.find(*input.TableName, input.Key); index >= 0 {
		return &dynamodb.GetItemOutput{Item: m.tables[*input.TableName][index]}, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (m *memoryDynamo) PutItem(ctx context.Context, input *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *input.TableName
	keyName := keyFor(table)
	key := map[string]types.AttributeValue{keyName: input.Item[keyName]}
	if index := m.find(table, key); index >= 0 {
		if input.ConditionExpression != nil {
			return nil, &types.ConditionalCheckFailedException{}
		}
		m.tables[table][index] = input.Item
		return &dynamodb.PutItemOutput{}, nil
	}
	m.tables[table] = append(m.tables[table], input.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryDynamo) UpdateItem(ctx context.Context, input *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *input.TableName
	index := m.find(table, input.Key)
	if index < 0 {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	item := m.tables[table][index]
	assignments := strings.TrimPrefix(strings.TrimSpace(*input.UpdateExpression), "SET ")
	for _, assignment := range strings.Split(assignments, ",") {
		parts := strings.SplitN(assignment, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if resolved, ok := input.ExpressionAttributeNames[name]; ok {
			name = resolved
		}
		if value, ok := input.ExpressionAttributeValues[strings.TrimSpace(parts[1])]; ok {
			item[name] = value
		}
	}
	m.tables[table][index] = item
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (m *memoryDynamo) DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *input.TableName
	if index := m.find(table, input.Key); index >= 0 {
		m.tables[table] = append(m.tables[table][:index], m.tables[table][index+1:]...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan supports AND-joined equality and inequality terms, which covers
// every filter the handlers under test issue. As with the real service,
// ExpressionAttributeNames must carry at least one alias when present.
func (m *memoryDynamo) Scan(ctx context.Context, input *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if input.ExpressionAttributeNames != nil && len(input.ExpressionAttributeNames) == 0 {
		return nil, fmt.Errorf("ValidationException: ExpressionAttributeNames must not be empty")
	}
	var matched []map[string]types.AttributeValue
	for _, item := range m.tables[*input.TableName] {
		if input.FilterExpression == nil || filterMatches(item, *input.FilterExpression, input.ExpressionAttributeValues) {
			matched = append(matched, item)
		}
	}
	return &dynamodb.ScanOutput{Items: matched, Count: int32(len(matched))}, nil
}

func filterMatches(item map[string]types.AttributeValue, expr string, values map[string]types.AttributeValue) bool {
	for _, term := range strings.Split(expr, " AND ") {
		fields := strings.Fields(term)
		if len(fields) != 3 {
			return false
		}
		got := attrText(item[fields[0]])
		want := attrText(values[fields[2]])
		switch fields[1] {
		case "=":
			if got != want {
				return false
			}
		case "<>":
			if got == want {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func attrText(attr types.AttributeValue) string {
	switch v := attr.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return strconv.FormatBool(v.Value)
	}
	return ""
}

func (m *memoryDynamo) Query(ctx context.Context, input *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}

func newTestServer() (*mux.Router, *memoryDynamo) {
	fake := newMemoryDynamo()
	dynamo := &services.DynamoService{Client: fake}
	auth := services.NewAuthService(dynamo, []byte("test-secret"))
	trips := &services.TripService{Dynamo: dynamo}
	matches := &services.MatchService{Dynamo: dynamo, Trips: trips}
	profiles := &services.UserProfileService{Dynamo: dynamo}

	r := mux.NewRouter()
	routes.RegisterAuthRoutes(r, auth)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(auth))
	routes.RegisterTripRoutes(api, trips, matches)
	routes.RegisterUserProfileRoutes(api, profiles, auth)
	return r, fake
}

func postJSON(t *testing.T, router *mux.Router, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return body
}

func TestSignUpConfirmSignInOverHTTP(t *testing.T) {
	router, fake := newTestServer()

	// Sign up moves the client to the confirmation screen.
	response := postJSON(t, router, "/api/auth/signup", "", map[string]string{
		"email": "a@b.com", "password": "Abcdef1!", "firstName": "Ada", "lastName": "Bello",
	})
	if response.Code != http.StatusCreated {
		t.Fatalf("sign-up: expected 201, got %d: %s", response.Code, response.Body)
	}
	if body := decodeBody(t, response); body["nextState"] != controllers.StateConfirm {
		t.Fatalf("expected nextState confirm, got %v", body["nextState"])
	}

	// The issued code sits in the confirmation table.
	var code string
	for _, item := range fake.tables[models.ConfirmationCodesTable] {
		if stringAttr(item, "email") == "a@b.com" {
			code = stringAttr(item, "code")
		}
	}
	if code == "" {
		t.Fatal("no confirmation code issued")
	}

	// A wrong code is rejected with the exact client-facing wording.
	response = postJSON(t, router, "/api/auth/confirm", "", map[string]string{"email": "a@b.com", "code": "wrong"})
	if response.Code == http.StatusOK {
		t.Fatal("wrong code must not confirm the account")
	}

	response = postJSON(t, router, "/api/auth/confirm", "", map[string]string{"email": "a@b.com", "code": code})
	if response.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d: %s", response.Code, response.Body)
	}
	if body := decodeBody(t, response); body["nextState"] != controllers.StateSignIn {
		t.Fatalf("confirmation must route to sign-in, got %v", body["nextState"])
	}

	response = postJSON(t, router, "/api/auth/signin", "", map[string]string{"email": "a@b.com", "password": "Abcdef1!"})
	if response.Code != http.StatusOK {
		t.Fatalf("sign-in: expected 200, got %d: %s", response.Code, response.Body)
	}
	body := decodeBody(t, response)
	if body["nextState"] != controllers.StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", body["nextState"])
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a bearer token")
	}

	// The fresh account has no trips yet; the list is empty, not an error.
	request := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("trips: expected 200, got %d: %s", recorder.Code, recorder.Body)
	}
	tripsBody := decodeBody(t, recorder)
	trips, ok := tripsBody["trips"].([]interface{})
	if !ok || len(trips) != 0 {
		t.Fatalf("expected empty trip list, got %v", tripsBody["trips"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestServer()

	request := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", recorder.Code)
	}

	request = httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a bad token, got %d", recorder.Code)
	}
}

func TestSignInErrorsUseClientWording(t *testing.T) {
	router, _ := newTestServer()

	response := postJSON(t, router, "/api/auth/signin", "", map[string]string{"email": "nobody@b.com", "password": "Abcdef1!"})
	if response.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown account, got %d", response.Code)
	}
	body := decodeBody(t, response)
	if body["error"] != "Account not found. Please sign up first or check your email address." {
		t.Fatalf("unexpected error wording: %v", body["error"])
	}

	response = postJSON(t, router, "/api/auth/signup", "", map[string]string{
		"email": "a@b.com", "password": "weak", "firstName": "Ada", "lastName": "Bello",
	})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", response.Code)
	}
	body = decodeBody(t, response)
	if body["error"] != "Password must be at least 8 characters with uppercase, lowercase, number and symbol." {
		t.Fatalf("unexpected error wording: %v", body["error"])
	}
}

// obtainToken runs the full sign-up, confirm, sign-in flow and returns the
// issued bearer token.
func obtainToken(t *testing.T, router *mux.Router, fake *memoryDynamo, email string) string {
	t.Helper()

	response := postJSON(t, router, "/api/auth/signup", "", map[string]string{
		"email": email, "password": "Abcdef1!", "firstName": "Ada", "lastName": "Bello",
	})
	if response.Code != http.StatusCreated {
		t.Fatalf("sign-up: expected 201, got %d: %s", response.Code, response.Body)
	}

	var code string
	for _, item := range fake.tables[models.ConfirmationCodesTable] {
		if stringAttr(item, "email") == email {
			code = stringAttr(item, "code")
		}
	}
	if code == "" {
		t.Fatalf("no confirmation code issued for %s", email)
	}

	response = postJSON(t, router, "/api/auth/confirm", "", map[string]string{"email": email, "code": code})
	if response.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d: %s", response.Code, response.Body)
	}

	response = postJSON(t, router, "/api/auth/signin", "", map[string]string{"email": email, "password": "Abcdef1!"})
	if response.Code != http.StatusOK {
		t.Fatalf("sign-in: expected 200, got %d: %s", response.Code, response.Body)
	}
	token, _ := decodeBody(t, response)["token"].(string)
	if token == "" {
		t.Fatal("expected a bearer token")
	}
	return token
}

func TestTripMatchesOverHTTP(t *testing.T) {
	router, fake := newTestServer()
	mine := obtainToken(t, router, fake, "a@b.com")
	theirs := obtainToken(t, router, fake, "c@d.com")

	response := postJSON(t, router, "/api/trips", mine, map[string]interface{}{
		"title": "Safari", "country": "Kenya",
		"startDate": "2026-06-01", "endDate": "2026-06-10",
		"activities": []string{"Safari"},
	})
	if response.Code != http.StatusCreated {
		t.Fatalf("create trip: expected 201, got %d: %s", response.Code, response.Body)
	}
	created, _ := decodeBody(t, response)["trip"].(map[string]interface{})
	tripID, _ := created["id"].(string)
	if tripID == "" {
		t.Fatal("expected the created trip id")
	}

	response = postJSON(t, router, "/api/trips", theirs, map[string]interface{}{
		"title": "Safari too", "country": "Kenya",
		"startDate": "2026-06-05", "endDate": "2026-06-12",
		"activities": []string{"Safari"},
	})
	if response.Code != http.StatusCreated {
		t.Fatalf("create trip: expected 201, got %d: %s", response.Code, response.Body)
	}

	request := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID+"/matches", nil)
	request.Header.Set("Authorization", "Bearer "+mine)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("matches: expected 200, got %d: %s", recorder.Code, recorder.Body)
	}
	matches, ok := decodeBody(t, recorder)["matches"].([]interface{})
	if !ok || len(matches) != 1 {
		t.Fatalf("expected exactly one match, got %v", matches)
	}
}
