package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterDeckRoutes sets up routes for the discovery deck under the
// authenticated API router.
func RegisterDeckRoutes(r *mux.Router, deckService *services.DeckService) {
	controller := controllers.NewDeckController(deckService)

	deckRouter := r.PathPrefix("/deck").Subrouter()

	deckRouter.HandleFunc("", controller.HandleState).Methods("GET")
	deckRouter.HandleFunc("/info", controller.HandleInfo).Methods("GET")
	deckRouter.HandleFunc("/pass", controller.HandlePass).Methods("POST")
	deckRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	deckRouter.HandleFunc("/superlike", controller.HandleSuperLike).Methods("POST")
	deckRouter.HandleFunc("/reset", controller.HandleReset).Methods("POST")
}
