package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under
// the authenticated API router.
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService, authService *services.AuthService) {
	controller := controllers.NewUserProfileController(userProfileService, authService)

	profileRouter := r.PathPrefix("/profiles").Subrouter()

	profileRouter.HandleFunc("/me", controller.HandleGetMyProfile).Methods("GET")
	profileRouter.HandleFunc("/me", controller.HandleUpdateMyProfile).Methods("PUT")
	profileRouter.HandleFunc("/me/interests", controller.HandleToggleInterest).Methods("POST")
	profileRouter.HandleFunc("/{id}", controller.HandleGetProfileByID).Methods("GET")
}
