package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"

	"github.com/gorilla/mux"
)

// ConnectionController handles requests related to traveler connections
type ConnectionController struct {
	ConnectionService *services.ConnectionService
}

// NewConnectionController creates a new instance of ConnectionController
func NewConnectionController(connectionService *services.ConnectionService) *ConnectionController {
	return &ConnectionController{ConnectionService: connectionService}
}

// HandleListConnections returns the caller's connections with counterpart
// profiles resolved, optionally filtered by a name search.
func (c *ConnectionController) HandleListConnections(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	connections, err := c.ConnectionService.ListConnections(r.Context(), identity, r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"connections": connections})
}

// HandleCreateConnection sends a pending connection request.
func (c *ConnectionController) HandleCreateConnection(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var request struct {
		ToUserID string `json:"toUserId"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	connection, err := c.ConnectionService.CreateConnection(r.Context(), identity, request.ToUserID, request.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, connection)
}

// HandleUpdateConnectionStatus accepts or declines a pending request.
func (c *ConnectionController) HandleUpdateConnectionStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	connection, err := c.ConnectionService.UpdateConnectionStatus(r.Context(), identity, mux.Vars(r)["connectionId"], request.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, connection)
}
