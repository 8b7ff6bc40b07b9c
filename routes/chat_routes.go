package routes

import (
	"github.com/bowale01/spirited-travels-africa/controllers"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/socket"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for direct messaging under the
// authenticated API router. The subscribe route upgrades to a WebSocket.
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, hub *socket.Hub) {
	controller := controllers.NewChatController(chatService, hub)

	chatRouter := r.PathPrefix("/chat").Subrouter()

	chatRouter.HandleFunc("/{userId}/messages", controller.HandleGetConversation).Methods("GET")
	chatRouter.HandleFunc("/{userId}/messages", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/{userId}/read", controller.HandleMarkConversationRead).Methods("POST")
	chatRouter.HandleFunc("/{userId}/subscribe", controller.HandleSubscribe).Methods("GET")
}
