package models

// Connection is a directional relation between two traveler profiles
type Connection struct {
	ID                 string   `dynamodbav:"id" json:"id"`
	FromUserID         string   `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID           string   `dynamodbav:"toUserId" json:"toUserId"`
	Status             string   `dynamodbav:"status" json:"status"`
	MatchScore         float64  `dynamodbav:"matchScore,omitempty" json:"matchScore,omitempty"`
	CommonInterests    []string `dynamodbav:"commonInterests,omitempty" json:"commonInterests,omitempty"`
	CommonDestinations []string `dynamodbav:"commonDestinations,omitempty" json:"commonDestinations,omitempty"`
	ConnectionReason   string   `dynamodbav:"connectionReason,omitempty" json:"connectionReason,omitempty"`
	CreatedAt          string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ConnectionsTable is the DynamoDB table name for connections
const ConnectionsTable = "Connections"
