package models

// Trip is a planned or completed journey owned by a traveler
type Trip struct {
	ID             string   `dynamodbav:"id" json:"id"`
	UserID         string   `dynamodbav:"userId" json:"userId"`
	Title          string   `dynamodbav:"title" json:"title"`
	Description    string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Country        string   `dynamodbav:"country" json:"country"`
	City           string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Region         string   `dynamodbav:"region,omitempty" json:"region,omitempty"`
	StartDate      string   `dynamodbav:"startDate" json:"startDate"`
	EndDate        string   `dynamodbav:"endDate" json:"endDate"`
	Budget         float64  `dynamodbav:"budget,omitempty" json:"budget,omitempty"`
	Currency       string   `dynamodbav:"currency,omitempty" json:"currency,omitempty"`
	GroupSize      int      `dynamodbav:"groupSize,omitempty" json:"groupSize,omitempty"`
	TripType       string   `dynamodbav:"tripType,omitempty" json:"tripType,omitempty"`
	Activities     []string `dynamodbav:"activities,omitempty" json:"activities,omitempty"`
	Accommodation  string   `dynamodbav:"accommodation,omitempty" json:"accommodation,omitempty"`
	Transportation []string `dynamodbav:"transportation,omitempty" json:"transportation,omitempty"`
	IsPublic       bool     `dynamodbav:"isPublic" json:"isPublic"`
	Status         string   `dynamodbav:"status" json:"status"`
	Latitude       float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	CreatedAt      string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// TripBuckets is the planned/current/past partition of a traveler's trips,
// derived from trip dates against the current wall-clock time.
type TripBuckets struct {
	Planned []Trip `json:"planned"`
	Current []Trip `json:"current"`
	Past    []Trip `json:"past"`
}

// TripsTable is the DynamoDB table name for trips
const TripsTable = "Trips"
