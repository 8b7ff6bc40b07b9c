package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterConnectionRoutes sets up routes for traveler connections under
// the authenticated API router.
func RegisterConnectionRoutes(r *mux.Router, connectionService *services.ConnectionService) {
	controller := controllers.NewConnectionController(connectionService)

	connectionRouter := r.PathPrefix("/connections").Subrouter()

	connectionRouter.HandleFunc("", controller.HandleListConnections).Methods("GET")
	connectionRouter.HandleFunc("", controller.HandleCreateConnection).Methods("POST")
	connectionRouter.HandleFunc("/{connectionId}", controller.HandleUpdateConnectionStatus).Methods("PATCH")
}
