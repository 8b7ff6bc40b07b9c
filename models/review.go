package models

// Review is a traveler's rating and write-up of a destination
type Review struct {
	ID             string   `dynamodbav:"id" json:"id"`
	UserID         string   `dynamodbav:"userId" json:"userId"`
	DestinationID  string   `dynamodbav:"destinationId" json:"destinationId"`
	TripID         string   `dynamodbav:"tripId,omitempty" json:"tripId,omitempty"`
	Rating         int      `dynamodbav:"rating" json:"rating"`
	Title          string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Content        string   `dynamodbav:"content" json:"content"`
	Photos         []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	TravelDate     string   `dynamodbav:"travelDate,omitempty" json:"travelDate,omitempty"`
	TravelDuration int      `dynamodbav:"travelDuration,omitempty" json:"travelDuration,omitempty"`
	BudgetSpent    float64  `dynamodbav:"budgetSpent,omitempty" json:"budgetSpent,omitempty"`
	WouldRecommend bool     `dynamodbav:"wouldRecommend" json:"wouldRecommend"`
	Tips           string   `dynamodbav:"tips,omitempty" json:"tips,omitempty"`
	IsVerified     bool     `dynamodbav:"isVerified" json:"isVerified"`
	HelpfulCount   int      `dynamodbav:"helpfulCount" json:"helpfulCount"`
	CreatedAt      string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ReviewsTable is the DynamoDB table name for destination reviews
const ReviewsTable = "Reviews"
