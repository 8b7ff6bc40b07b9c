package socket

import (
	"log"
	"net/http"
	"sync"

	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/services"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks live websocket subscribers per conversation and pushes newly
// stored messages to them.
type Hub struct {
	mu            sync.Mutex
	conversations map[string]map[*websocket.Conn]bool
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{conversations: make(map[string]map[*websocket.Conn]bool)}
}

// Broadcast sends message to every subscriber of the conversation.
// Connections that fail to write are dropped.
func (h *Hub) Broadcast(conversationKey string, message models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conversations[conversationKey] {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Dropping websocket subscriber of %s: %v", conversationKey, err)
			conn.Close()
			delete(h.conversations[conversationKey], conn)
		}
	}
}

// Subscribe upgrades the request and registers the caller for the
// conversation with otherUserID until the connection closes.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, identity services.Identity, otherUserID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	key := services.ConversationKey(identity.UserID, otherUserID)
	h.add(key, conn)
	log.Printf("User %s subscribed to conversation %s", identity.UserID, key)

	// Reads only serve to detect the close; inbound messages go through
	// the HTTP send endpoint.
	go func() {
		defer func() {
			h.remove(key, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) add(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conversations[key] == nil {
		h.conversations[key] = make(map[*websocket.Conn]bool)
	}
	h.conversations[key][conn] = true
}

func (h *Hub) remove(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conversations[key], conn)
	if len(h.conversations[key]) == 0 {
		delete(h.conversations, key)
	}
}
