package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for presigned object storage URLs under
// the authenticated API router.
func RegisterS3Routes(r *mux.Router) {
	s3Router := r.PathPrefix("/s3").Subrouter()

	s3Router.HandleFunc("/upload-url", controllers.GeneratePresignedURL).Methods("POST")
	s3Router.HandleFunc("/read-url", controllers.GetPresignedReadURL).Methods("POST")
}
