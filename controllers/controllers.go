package controllers

import (
	"errors"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/middleware"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"
)

// requireIdentity pulls the authenticated identity out of the request
// context. Routes behind middleware.RequireAuth always have one; a miss
// means the route was wired outside the auth group.
func requireIdentity(w http.ResponseWriter, r *http.Request) (services.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return services.Identity{}, false
	}
	return identity, true
}

// writeServiceError maps service failures to HTTP statuses. Anything not
// recognized as a caller mistake is reported as backend unavailability
// rather than masked with placeholder data.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		utils.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrBlankMessage):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		utils.WriteDataUnavailable(w, err)
	}
}
