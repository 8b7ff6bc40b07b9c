package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterTripRoutes sets up routes for trip operations under the
// authenticated API router.
func RegisterTripRoutes(r *mux.Router, tripService *services.TripService, matchService *services.MatchService) {
	controller := controllers.NewTripController(tripService, matchService)

	tripRouter := r.PathPrefix("/trips").Subrouter()

	tripRouter.HandleFunc("", controller.HandleListMyTrips).Methods("GET")
	tripRouter.HandleFunc("", controller.HandleCreateTrip).Methods("POST")
	tripRouter.HandleFunc("/buckets", controller.HandleListTripBuckets).Methods("GET")
	tripRouter.HandleFunc("/{tripId}/status", controller.HandleUpdateTripStatus).Methods("PATCH")
	tripRouter.HandleFunc("/{tripId}/matches", controller.HandleFindMatches).Methods("GET")
	tripRouter.HandleFunc("/{tripId}", controller.HandleDeleteTrip).Methods("DELETE")
}
