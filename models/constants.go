package models

// Travel styles a profile can declare
const (
	TravelStyleBudget     = "Budget"
	TravelStyleLuxury     = "Luxury"
	TravelStyleBackpacker = "Backpacker"
	TravelStyleCultural   = "Cultural"
	TravelStyleAdventure  = "Adventure"
)

// Trip statuses
const (
	TripStatusPlanning  = "Planning"
	TripStatusActive    = "Active"
	TripStatusCompleted = "Completed"
	TripStatusCancelled = "Cancelled"
)

// Trip types
const (
	TripTypeSolo   = "Solo"
	TripTypeCouple = "Couple"
	TripTypeGroup  = "Group"
	TripTypeFamily = "Family"
)

// Accommodation levels
const (
	AccommodationBudget   = "Budget"
	AccommodationMidRange = "Mid-range"
	AccommodationLuxury   = "Luxury"
	AccommodationHostel   = "Hostel"
	AccommodationCamping  = "Camping"
)

// Connection statuses
const (
	ConnectionStatusPending  = "Pending"
	ConnectionStatusAccepted = "Accepted"
	ConnectionStatusDeclined = "Declined"
	ConnectionStatusBlocked  = "Blocked"
)

// Message types
const (
	MessageTypeText           = "Text"
	MessageTypeImage          = "Image"
	MessageTypeLocation       = "Location"
	MessageTypeTripInvitation = "Trip_Invitation"
)

// Destination categories
const (
	CategorySafari     = "Safari"
	CategoryBeach      = "Beach"
	CategoryMountain   = "Mountain"
	CategoryCultural   = "Cultural"
	CategoryHistorical = "Historical"
	CategoryUrban      = "Urban"
	CategoryDesert     = "Desert"
)

// Destination difficulty ratings
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
	DifficultyExpert      = "Expert"
)

// Subscription plans
const (
	PlanFree    = "Free"
	PlanPremium = "Premium"
	PlanVIP     = "VIP"
)

// Subscription statuses
const (
	SubscriptionActive    = "Active"
	SubscriptionCancelled = "Cancelled"
	SubscriptionExpired   = "Expired"
	SubscriptionSuspended = "Suspended"
)

var travelStyles = []string{TravelStyleBudget, TravelStyleLuxury, TravelStyleBackpacker, TravelStyleCultural, TravelStyleAdventure}

var tripStatuses = []string{TripStatusPlanning, TripStatusActive, TripStatusCompleted, TripStatusCancelled}

var tripTypes = []string{TripTypeSolo, TripTypeCouple, TripTypeGroup, TripTypeFamily}

var accommodations = []string{AccommodationBudget, AccommodationMidRange, AccommodationLuxury, AccommodationHostel, AccommodationCamping}

var connectionStatuses = []string{ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusDeclined, ConnectionStatusBlocked}

var messageTypes = []string{MessageTypeText, MessageTypeImage, MessageTypeLocation, MessageTypeTripInvitation}

var destinationCategories = []string{CategorySafari, CategoryBeach, CategoryMountain, CategoryCultural, CategoryHistorical, CategoryUrban, CategoryDesert}

var difficulties = []string{DifficultyEasy, DifficultyModerate, DifficultyChallenging, DifficultyExpert}

var subscriptionPlans = []string{PlanFree, PlanPremium, PlanVIP}

var subscriptionStatuses = []string{SubscriptionActive, SubscriptionCancelled, SubscriptionExpired, SubscriptionSuspended}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// ValidTravelStyle reports whether v is a recognized travel style.
func ValidTravelStyle(v string) bool { return contains(travelStyles, v) }

// ValidTripStatus reports whether v is a recognized trip status.
func ValidTripStatus(v string) bool { return contains(tripStatuses, v) }

// ValidTripType reports whether v is a recognized trip type.
func ValidTripType(v string) bool { return contains(tripTypes, v) }

// ValidAccommodation reports whether v is a recognized accommodation level.
func ValidAccommodation(v string) bool { return contains(accommodations, v) }

// ValidConnectionStatus reports whether v is a recognized connection status.
func ValidConnectionStatus(v string) bool { return contains(connectionStatuses, v) }

// ValidMessageType reports whether v is a recognized message type.
func ValidMessageType(v string) bool { return contains(messageTypes, v) }

// ValidDestinationCategory reports whether v is a recognized destination category.
func ValidDestinationCategory(v string) bool { return contains(destinationCategories, v) }

// ValidDifficulty reports whether v is a recognized difficulty rating.
func ValidDifficulty(v string) bool { return contains(difficulties, v) }

// ValidSubscriptionPlan reports whether v is a recognized subscription plan.
func ValidSubscriptionPlan(v string) bool { return contains(subscriptionPlans, v) }

// ValidSubscriptionStatus reports whether v is a recognized subscription status.
func ValidSubscriptionStatus(v string) bool { return contains(subscriptionStatuses, v) }
