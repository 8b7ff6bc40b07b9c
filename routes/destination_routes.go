package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterDestinationRoutes sets up routes for the destination catalog and
// its reviews under the authenticated API router.
func RegisterDestinationRoutes(r *mux.Router, destinationService *services.DestinationService, reviewService *services.ReviewService) {
	controller := controllers.NewDestinationController(destinationService, reviewService)

	destinationRouter := r.PathPrefix("/destinations").Subrouter()

	destinationRouter.HandleFunc("", controller.HandleListDestinations).Methods("GET")
	destinationRouter.HandleFunc("", controller.HandleCreateDestination).Methods("POST")
	destinationRouter.HandleFunc("/reviews/{reviewId}", controller.HandleDeleteReview).Methods("DELETE")
	destinationRouter.HandleFunc("/{id}/reviews", controller.HandleListReviews).Methods("GET")
	destinationRouter.HandleFunc("/{id}/reviews", controller.HandleCreateReview).Methods("POST")
	destinationRouter.HandleFunc("/{id}", controller.HandleGetDestination).Methods("GET")
	destinationRouter.HandleFunc("/{id}", controller.HandleUpdateDestination).Methods("PUT")
	destinationRouter.HandleFunc("/{id}", controller.HandleDeleteDestination).Methods("DELETE")
}
