package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/bowale01/spirited-travels-africa/middleware"
	"github.com/bowale01/spirited-travels-africa/routes"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	authService := services.NewAuthService(dynamoService, []byte(jwtSecret))
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	tripService := &services.TripService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService, Trips: tripService}
	connectionService := &services.ConnectionService{Dynamo: dynamoService, Profiles: userProfileService}
	destinationService := &services.DestinationService{Dynamo: dynamoService}
	reviewService := &services.ReviewService{Dynamo: dynamoService, Destinations: destinationService}
	subscriptionService := &services.SubscriptionService{Dynamo: dynamoService}
	deckService := services.NewDeckService()

	hub := socket.NewHub()
	chatService := &services.ChatService{Dynamo: dynamoService, Notifier: hub}

	// Make sure the deck's destinations exist in the catalog
	destinationService.Seed(context.Background(), services.SeedDestinations())

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Spirited Travels Africa")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Public authentication routes
	routes.RegisterAuthRoutes(r, authService)

	// Everything under /api except /api/auth requires a bearer token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(authService))

	routes.RegisterUserProfileRoutes(api, userProfileService, authService)
	routes.RegisterTripRoutes(api, tripService, matchService)
	routes.RegisterConnectionRoutes(api, connectionService)
	routes.RegisterChatRoutes(api, chatService, hub)
	routes.RegisterDeckRoutes(api, deckService)
	routes.RegisterDestinationRoutes(api, destinationService, reviewService)
	routes.RegisterSubscriptionRoutes(api, subscriptionService)
	routes.RegisterS3Routes(api)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
