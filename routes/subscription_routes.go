package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterSubscriptionRoutes sets up routes for premium subscriptions
// under the authenticated API router.
func RegisterSubscriptionRoutes(r *mux.Router, subscriptionService *services.SubscriptionService) {
	controller := controllers.NewSubscriptionController(subscriptionService)

	subscriptionRouter := r.PathPrefix("/subscription").Subrouter()

	subscriptionRouter.HandleFunc("", controller.HandleGetSubscription).Methods("GET")
	subscriptionRouter.HandleFunc("", controller.HandleSubscribe).Methods("POST")
	subscriptionRouter.HandleFunc("", controller.HandleCancelSubscription).Methods("DELETE")
}
