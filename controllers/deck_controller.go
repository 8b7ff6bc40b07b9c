package controllers

import (
	"net/http"

	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"
)

// DeckController handles the discovery deck
type DeckController struct {
	DeckService *services.DeckService
}

// NewDeckController creates a new instance of DeckController
func NewDeckController(deckService *services.DeckService) *DeckController {
	return &DeckController{DeckService: deckService}
}

// HandleState returns the caller's current deck position and card.
func (c *DeckController) HandleState(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, c.DeckService.State(identity.UserID))
}

// HandlePass skips the current card.
func (c *DeckController) HandlePass(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, c.DeckService.Pass(identity.UserID))
}

// HandleLike saves the current card to the wishlist and advances.
func (c *DeckController) HandleLike(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, c.DeckService.Like(identity.UserID))
}

// HandleSuperLike adds the current card to the bucket list and advances.
func (c *DeckController) HandleSuperLike(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, c.DeckService.SuperLike(identity.UserID))
}

// HandleInfo returns the current card without advancing.
func (c *DeckController) HandleInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	state, err := c.DeckService.Info(identity.UserID)
	if err != nil {
		utils.WriteError(w, http.StatusConflict, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, state)
}

// HandleReset starts the caller's deck over from the first card.
func (c *DeckController) HandleReset(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, c.DeckService.Reset(identity.UserID))
}
