package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/bowale01/spirited-travels-africa/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Stable error codes mirrored from the identity provider the mobile client
// was originally written against. Controllers map them to user-facing text.
const (
	CodeUsernameExists   = "UsernameExistsException"
	CodeInvalidPassword  = "InvalidPasswordException"
	CodeInvalidParameter = "InvalidParameterException"
	CodeUserNotFound     = "UserNotFoundException"
	CodeNotAuthorized    = "NotAuthorizedException"
	CodeUserNotConfirmed = "UserNotConfirmedException"
	CodeCodeMismatch     = "CodeMismatchException"
	CodeCodeExpired      = "ExpiredCodeException"
)

// AuthError is a coded authentication failure. Every failure is terminal
// for the attempt; nothing here retries.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string { return e.Code + ": " + e.Message }

func authErr(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

const (
	accessTokenTTL      = 24 * time.Hour
	confirmationCodeTTL = 15 * time.Minute
)

// Claims carried by access tokens
type Claims struct {
	Email  string   `json:"email"`
	Groups []string `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// AuthService implements the sign-up / confirm / sign-in / sign-out flow
// against the Accounts and ConfirmationCodes tables.
type AuthService struct {
	Dynamo    *DynamoService
	JWTSecret []byte

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewAuthService creates an AuthService backed by dynamo, signing tokens
// with jwtSecret.
func NewAuthService(dynamo *DynamoService, jwtSecret []byte) *AuthService {
	return &AuthService{
		Dynamo:    dynamo,
		JWTSecret: jwtSecret,
		revoked:   make(map[string]time.Time),
	}
}

// SignUp registers a new unconfirmed account and issues a confirmation code.
func (as *AuthService) SignUp(ctx context.Context, email, password, firstName, lastName string) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, authErr(CodeInvalidParameter, "missing required sign-up fields")
	}
	if !strings.Contains(email, "@") {
		return nil, authErr(CodeInvalidParameter, "malformed email address")
	}
	if err := checkPasswordPolicy(password); err != nil {
		return nil, err
	}

	_, err := as.getAccount(ctx, email)
	if err == nil {
		return nil, authErr(CodeUsernameExists, "an account with this email already exists")
	}
	if !errors.Is(err, ErrItemNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		Email:        email,
		UserID:       uuid.NewString(),
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Username:     usernameFromEmail(email),
		Status:       models.AccountUnconfirmed,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Dynamo.PutItem(ctx, models.AccountsTable, account); err != nil {
		return nil, err
	}

	code, err := generateConfirmationCode()
	if err != nil {
		return nil, err
	}
	pending := models.ConfirmationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(confirmationCodeTTL).Unix(),
	}
	if err := as.Dynamo.PutItem(ctx, models.ConfirmationCodesTable, pending); err != nil {
		return nil, err
	}

	// Delivery of the code is the mail provider's job; the service only
	// records it. Logged so local setups can complete the flow.
	log.Printf("Issued confirmation code for %s", email)
	return &account, nil
}

// ConfirmSignUp redeems an emailed confirmation code.
func (as *AuthService) ConfirmSignUp(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || code == "" {
		return authErr(CodeInvalidParameter, "email and confirmation code are required")
	}

	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
	item, err := as.Dynamo.GetItem(ctx, models.ConfirmationCodesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return authErr(CodeCodeMismatch, "invalid confirmation code")
		}
		return err
	}

	var pending models.ConfirmationCode
	if err := attributevalue.UnmarshalMap(item, &pending); err != nil {
		return fmt.Errorf("failed to unmarshal confirmation code: %w", err)
	}
	if pending.Code != code {
		return authErr(CodeCodeMismatch, "invalid confirmation code")
	}
	if time.Now().Unix() > pending.ExpiresAt {
		return authErr(CodeCodeExpired, "confirmation code has expired")
	}

	updateExpression := "SET #status = :confirmed, confirmedAt = :now"
	_, err = as.Dynamo.UpdateItem(ctx, models.AccountsTable, updateExpression,
		map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		map[string]types.AttributeValue{
			":confirmed": &types.AttributeValueMemberS{Value: models.AccountConfirmed},
			":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return err
	}

	if err := as.Dynamo.DeleteItem(ctx, models.ConfirmationCodesTable, key); err != nil {
		log.Printf("Failed to delete redeemed confirmation code for %s: %v", email, err)
	}
	return nil
}

// SignIn verifies credentials and returns a signed access token together
// with the account.
func (as *AuthService) SignIn(ctx context.Context, email, password string) (string, *models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, authErr(CodeInvalidParameter, "email and password are required")
	}

	account, err := as.getAccount(ctx, email)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return "", nil, authErr(CodeUserNotFound, "account does not exist")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, authErr(CodeNotAuthorized, "incorrect email or password")
	}
	if account.Status != models.AccountConfirmed {
		return "", nil, authErr(CodeUserNotConfirmed, "account is not confirmed")
	}

	token, err := as.issueToken(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// SignOut revokes the presented access token. Unknown or already expired
// tokens are treated as a successful sign-out.
func (as *AuthService) SignOut(tokenString string) {
	claims, err := as.parseToken(tokenString)
	if err != nil {
		return
	}

	as.mu.Lock()
	defer as.mu.Unlock()
	if as.revoked == nil {
		as.revoked = make(map[string]time.Time)
	}
	expiry := time.Now().Add(accessTokenTTL)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	as.revoked[claims.ID] = expiry

	// Drop entries for tokens that have expired on their own.
	now := time.Now()
	for id, exp := range as.revoked {
		if now.After(exp) {
			delete(as.revoked, id)
		}
	}
}

// CurrentIdentity resolves a bearer token to the identity it was issued for.
func (as *AuthService) CurrentIdentity(tokenString string) (Identity, error) {
	claims, err := as.parseToken(tokenString)
	if err != nil {
		return Identity{}, authErr(CodeNotAuthorized, "invalid or expired token")
	}

	as.mu.Lock()
	_, isRevoked := as.revoked[claims.ID]
	as.mu.Unlock()
	if isRevoked {
		return Identity{}, authErr(CodeNotAuthorized, "token has been revoked")
	}

	return Identity{UserID: claims.Subject, Email: claims.Email, Groups: claims.Groups}, nil
}

// GetAccount returns the stored account for an identity.
func (as *AuthService) GetAccount(ctx context.Context, email string) (*models.Account, error) {
	return as.getAccount(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (as *AuthService) getAccount(ctx context.Context, email string) (*models.Account, error) {
	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
	item, err := as.Dynamo.GetItem(ctx, models.AccountsTable, key)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}
	return &account, nil
}

func (as *AuthService) issueToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:  account.Email,
		Groups: account.Groups,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   account.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (as *AuthService) parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return as.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// checkPasswordPolicy enforces the provider's password rules: at least
// eight characters with upper case, lower case, a digit and a symbol.
func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return authErr(CodeInvalidPassword, "password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return authErr(CodeInvalidPassword, "password must contain upper case, lower case, a number and a symbol")
	}
	return nil
}

func generateConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return "traveler"
}
