package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/socket"
	"github.com/bowale01/spirited-travels-africa/utils"

	"github.com/gorilla/mux"
)

// ChatController handles direct message requests
type ChatController struct {
	ChatService *services.ChatService
	Hub         *socket.Hub
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, hub *socket.Hub) *ChatController {
	return &ChatController{ChatService: chatService, Hub: hub}
}

// HandleGetConversation returns the full two-party conversation, oldest
// message first.
func (c *ChatController) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	messages, err := c.ChatService.GetConversation(r.Context(), identity, mux.Vars(r)["userId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// HandleSendMessage stores one message. Clients may supply their own
// messageId; resending the same id is a no-op so retries never duplicate.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	message.ReceiverID = mux.Vars(r)["userId"]

	sent, err := c.ChatService.SendMessage(r.Context(), identity, message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, sent)
}

// HandleMarkConversationRead marks every unread message from the other
// participant as read.
func (c *ChatController) HandleMarkConversationRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := c.ChatService.MarkConversationRead(r.Context(), identity, mux.Vars(r)["userId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Conversation marked as read"})
}

// HandleSubscribe upgrades to a WebSocket that streams new messages in the
// conversation with the named user.
func (c *ChatController) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	c.Hub.Subscribe(w, r, identity, mux.Vars(r)["userId"])
}
