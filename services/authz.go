package services

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Groups []string `json:"groups,omitempty"`
}

// InGroup reports whether the identity belongs to the named group.
func (id Identity) InGroup(group string) bool {
	for _, g := range id.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// AdminGroup is the group whose members may write catalog entities.
const AdminGroup = "admin"

// Action is an operation on an entity.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entity names used by the authorization table.
const (
	EntityUserProfile  = "UserProfile"
	EntityTrip         = "Trip"
	EntityConnection   = "Connection"
	EntityTripMatch    = "TripMatch"
	EntityMessage      = "Message"
	EntityDestination  = "Destination"
	EntityReview       = "Review"
	EntitySubscription = "Subscription"
)

// accessRule mirrors the per-entity authorization block of the data schema:
// the owner gets full access, authenticated identities may read, and for
// catalog entities the admin group writes.
type accessRule struct {
	ownerFull         bool
	authenticatedRead bool
	adminWrite        bool
}

var accessRules = map[string]accessRule{
	EntityUserProfile:  {ownerFull: true, authenticatedRead: true},
	EntityTrip:         {ownerFull: true, authenticatedRead: true},
	EntityTripMatch:    {ownerFull: true, authenticatedRead: true},
	EntityReview:       {ownerFull: true, authenticatedRead: true},
	EntityConnection:   {ownerFull: true},
	EntityMessage:      {ownerFull: true},
	EntitySubscription: {ownerFull: true},
	EntityDestination:  {authenticatedRead: true, adminWrite: true},
}

// Can reports whether identity may perform action on the named entity.
// ownerID is the userId the record belongs to; for entities with no owner
// (the destination catalog) it is ignored.
func Can(identity Identity, action Action, entity string, ownerID string) bool {
	rule, ok := accessRules[entity]
	if !ok {
		return false
	}
	if identity.UserID == "" {
		return false
	}
	if rule.ownerFull && identity.UserID == ownerID {
		return true
	}
	if rule.authenticatedRead && action == ActionRead {
		return true
	}
	if rule.adminWrite && action != ActionRead && identity.InGroup(AdminGroup) {
		return true
	}
	return false
}
