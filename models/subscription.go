package models

// Subscription is a traveler's plan tier
type Subscription struct {
	ID            string   `dynamodbav:"id" json:"id"`
	UserID        string   `dynamodbav:"userId" json:"userId"`
	PlanType      string   `dynamodbav:"planType" json:"planType"`
	Status        string   `dynamodbav:"status" json:"status"`
	StartDate     string   `dynamodbav:"startDate" json:"startDate"`
	EndDate       string   `dynamodbav:"endDate,omitempty" json:"endDate,omitempty"`
	Price         float64  `dynamodbav:"price,omitempty" json:"price,omitempty"`
	Currency      string   `dynamodbav:"currency,omitempty" json:"currency,omitempty"`
	PaymentMethod string   `dynamodbav:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Features      []string `dynamodbav:"features,omitempty" json:"features,omitempty"`
	AutoRenew     bool     `dynamodbav:"autoRenew" json:"autoRenew"`
	CreatedAt     string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SubscriptionsTable is the DynamoDB table name for subscriptions
const SubscriptionsTable = "Subscriptions"
