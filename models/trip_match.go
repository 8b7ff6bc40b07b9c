package models

// TripMatch records a scored pairing between two travelers' trips
type TripMatch struct {
	ID                   string   `dynamodbav:"id" json:"id"`
	TripID               string   `dynamodbav:"tripId" json:"tripId"`
	MatchedTripID        string   `dynamodbav:"matchedTripId" json:"matchedTripId"`
	UserID               string   `dynamodbav:"userId" json:"userId"`
	MatchedUserID        string   `dynamodbav:"matchedUserId" json:"matchedUserId"`
	MatchScore           float64  `dynamodbav:"matchScore" json:"matchScore"`
	CommonActivities     []string `dynamodbav:"commonActivities,omitempty" json:"commonActivities,omitempty"`
	OverlappingDates     bool     `dynamodbav:"overlappingDates" json:"overlappingDates"`
	SameDestination      bool     `dynamodbav:"sameDestination" json:"sameDestination"`
	CompatibilityFactors []string `dynamodbav:"compatibilityFactors,omitempty" json:"compatibilityFactors,omitempty"`
	CreatedAt            string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// TripMatchesTable is the DynamoDB table name for trip matches
const TripMatchesTable = "TripMatches"
