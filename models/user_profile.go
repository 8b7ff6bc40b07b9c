package models

// UserProfile defines the structure for traveler profiles
type UserProfile struct {
	ID             string   `dynamodbav:"id" json:"id"`
	UserID         string   `dynamodbav:"userId" json:"userId"`
	Username       string   `dynamodbav:"username" json:"username"`
	Email          string   `dynamodbav:"email" json:"email"`
	FirstName      string   `dynamodbav:"firstName,omitempty" json:"firstName,omitempty"`
	LastName       string   `dynamodbav:"lastName,omitempty" json:"lastName,omitempty"`
	Bio            string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string   `dynamodbav:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	DateOfBirth    string   `dynamodbav:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Country        string   `dynamodbav:"country,omitempty" json:"country,omitempty"`
	City           string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Languages      []string `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	Interests      []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	TravelStyle    string   `dynamodbav:"travelStyle,omitempty" json:"travelStyle,omitempty"`
	IsVerified     bool     `dynamodbav:"isVerified" json:"isVerified"`
	CreatedAt      string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AvailableInterests is the fixed vocabulary offered by the profile editor.
var AvailableInterests = []string{
	"Safari", "Wildlife", "Culture", "Adventure", "Food", "Music",
	"Photography", "History", "Beach", "Mountains", "Desert", "Cities",
}

// UserProfilesTable is the DynamoDB table name for traveler profiles
const UserProfilesTable = "UserProfiles"
