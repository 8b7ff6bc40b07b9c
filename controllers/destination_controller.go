package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"

	"github.com/gorilla/mux"
)

// DestinationController handles requests related to the destination catalog
type DestinationController struct {
	DestinationService *services.DestinationService
	ReviewService      *services.ReviewService
}

// NewDestinationController creates a new instance of DestinationController
func NewDestinationController(destinationService *services.DestinationService, reviewService *services.ReviewService) *DestinationController {
	return &DestinationController{DestinationService: destinationService, ReviewService: reviewService}
}

// HandleListDestinations lists the catalog, optionally filtered by
// category or country, best rated first.
func (c *DestinationController) HandleListDestinations(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	destinations, err := c.DestinationService.ListDestinations(r.Context(), identity,
		r.URL.Query().Get("category"), r.URL.Query().Get("country"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"destinations": destinations})
}

// HandleGetDestination fetches one destination by id.
func (c *DestinationController) HandleGetDestination(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	destination, err := c.DestinationService.GetDestination(r.Context(), identity, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, destination)
}

// HandleCreateDestination adds a catalog entry. Admin group only.
func (c *DestinationController) HandleCreateDestination(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var destination models.Destination
	if err := json.NewDecoder(r.Body).Decode(&destination); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := c.DestinationService.CreateDestination(r.Context(), identity, destination)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateDestination replaces a catalog entry. Admin group only.
func (c *DestinationController) HandleUpdateDestination(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var destination models.Destination
	if err := json.NewDecoder(r.Body).Decode(&destination); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := c.DestinationService.UpdateDestination(r.Context(), identity, mux.Vars(r)["id"], destination)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteDestination removes a catalog entry. Admin group only.
func (c *DestinationController) HandleDeleteDestination(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := c.DestinationService.DeleteDestination(r.Context(), identity, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Destination deleted"})
}

// HandleListReviews lists a destination's reviews, newest first.
func (c *DestinationController) HandleListReviews(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reviews, err := c.ReviewService.ListReviewsByDestination(r.Context(), identity, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

// HandleCreateReview posts a review against a destination and folds the
// rating into the destination's average.
func (c *DestinationController) HandleCreateReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	review.DestinationID = mux.Vars(r)["id"]

	created, err := c.ReviewService.CreateReview(r.Context(), identity, review)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, created)
}

// HandleDeleteReview removes one of the caller's own reviews.
func (c *DestinationController) HandleDeleteReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := c.ReviewService.DeleteReview(r.Context(), identity, mux.Vars(r)["reviewId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Review deleted"})
}
