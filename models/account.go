package models

// Account statuses
const (
	AccountUnconfirmed = "Unconfirmed"
	AccountConfirmed   = "Confirmed"
)

// Account holds sign-in credentials and confirmation state for an identity.
// The password is stored as a bcrypt hash and never leaves the service.
type Account struct {
	Email        string   `dynamodbav:"email" json:"email"`
	UserID       string   `dynamodbav:"userId" json:"userId"`
	PasswordHash string   `dynamodbav:"passwordHash" json:"-"`
	FirstName    string   `dynamodbav:"firstName,omitempty" json:"firstName,omitempty"`
	LastName     string   `dynamodbav:"lastName,omitempty" json:"lastName,omitempty"`
	Username     string   `dynamodbav:"username,omitempty" json:"username,omitempty"`
	Status       string   `dynamodbav:"status" json:"status"`
	Groups       []string `dynamodbav:"groups,omitempty" json:"groups,omitempty"`
	CreatedAt    string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	ConfirmedAt  string   `dynamodbav:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
}

// ConfirmationCode is an emailed verification code pending redemption
type ConfirmationCode struct {
	Email     string `dynamodbav:"email" json:"email"`
	Code      string `dynamodbav:"code" json:"code"`
	ExpiresAt int64  `dynamodbav:"expiresAt" json:"expiresAt"`
}

// AccountsTable is the DynamoDB table name for sign-in accounts
const AccountsTable = "Accounts"

// ConfirmationCodesTable is the DynamoDB table name for pending confirmation codes
const ConfirmationCodesTable = "ConfirmationCodes"
