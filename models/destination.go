package models

// Destination is a curated travel destination in the catalog
type Destination struct {
	ID              string   `dynamodbav:"id" json:"id"`
	Name            string   `dynamodbav:"name" json:"name"`
	Country         string   `dynamodbav:"country" json:"country"`
	Region          string   `dynamodbav:"region" json:"region"`
	City            string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Description     string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Category        string   `dynamodbav:"category,omitempty" json:"category,omitempty"`
	Activities      []string `dynamodbav:"activities,omitempty" json:"activities,omitempty"`
	BestTimeToVisit []string `dynamodbav:"bestTimeToVisit,omitempty" json:"bestTimeToVisit,omitempty"`
	AverageBudget   float64  `dynamodbav:"averageBudget,omitempty" json:"averageBudget,omitempty"`
	Difficulty      string   `dynamodbav:"difficulty,omitempty" json:"difficulty,omitempty"`
	Latitude        float64  `dynamodbav:"latitude" json:"latitude"`
	Longitude       float64  `dynamodbav:"longitude" json:"longitude"`
	ImageURLs       []string `dynamodbav:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	Rating          float64  `dynamodbav:"rating" json:"rating"`
	ReviewCount     int      `dynamodbav:"reviewCount" json:"reviewCount"`
	IsPopular       bool     `dynamodbav:"isPopular" json:"isPopular"`
	CreatedAt       string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DestinationsTable is the DynamoDB table name for the destination catalog
const DestinationsTable = "Destinations"
