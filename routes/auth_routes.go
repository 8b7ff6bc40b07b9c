package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the authentication flow under /api/auth.
// These routes are public; everything else requires a bearer token.
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()

	authRouter.HandleFunc("/signup", controller.HandleSignUp).Methods("POST")
	authRouter.HandleFunc("/confirm", controller.HandleConfirmSignUp).Methods("POST")
	authRouter.HandleFunc("/signin", controller.HandleSignIn).Methods("POST")
	authRouter.HandleFunc("/signout", controller.HandleSignOut).Methods("POST")
}
