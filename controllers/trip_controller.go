package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"

	"github.com/gorilla/mux"
)

// TripController handles requests related to trips
type TripController struct {
	TripService  *services.TripService
	MatchService *services.MatchService
}

// NewTripController creates a new instance of TripController
func NewTripController(tripService *services.TripService, matchService *services.MatchService) *TripController {
	return &TripController{TripService: tripService, MatchService: matchService}
}

// HandleListMyTrips returns the caller's trips, newest start date first.
func (c *TripController) HandleListMyTrips(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	trips, err := c.TripService.ListTrips(r.Context(), identity, identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"trips": trips})
}

// HandleListTripBuckets returns the caller's trips partitioned into
// planned, current and past relative to the server clock.
func (c *TripController) HandleListTripBuckets(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	buckets, err := c.TripService.ListTripBuckets(r.Context(), identity, identity.UserID, time.Now().UTC())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, buckets)
}

// HandleCreateTrip stores a new trip owned by the caller.
func (c *TripController) HandleCreateTrip(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := c.TripService.CreateTrip(r.Context(), identity, trip)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Trip created successfully",
		"trip":    created,
	})
}

// HandleUpdateTripStatus moves a trip through its lifecycle.
func (c *TripController) HandleUpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := c.TripService.UpdateTripStatus(r.Context(), identity, mux.Vars(r)["tripId"], request.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteTrip removes one of the caller's trips.
func (c *TripController) HandleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := c.TripService.DeleteTrip(r.Context(), identity, mux.Vars(r)["tripId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Trip deleted"})
}

// HandleFindMatches scores the caller's trip against other public trips.
func (c *TripController) HandleFindMatches(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	matches, err := c.MatchService.FindMatchesForTrip(r.Context(), identity, mux.Vars(r)["tripId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
