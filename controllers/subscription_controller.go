package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"
)

// SubscriptionController handles premium subscription requests
type SubscriptionController struct {
	SubscriptionService *services.SubscriptionService
}

// NewSubscriptionController creates a new instance of SubscriptionController
func NewSubscriptionController(subscriptionService *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{SubscriptionService: subscriptionService}
}

// HandleGetSubscription returns the caller's subscription, defaulting to
// the free tier when none is stored.
func (c *SubscriptionController) HandleGetSubscription(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	subscription, err := c.SubscriptionService.GetSubscription(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, subscription)
}

// HandleSubscribe starts or replaces the caller's subscription.
func (c *SubscriptionController) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var request struct {
		PlanType      string `json:"planType"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	subscription, err := c.SubscriptionService.Subscribe(r.Context(), identity, request.PlanType, request.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, subscription)
}

// HandleCancelSubscription cancels the caller's subscription.
func (c *SubscriptionController) HandleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	subscription, err := c.SubscriptionService.CancelSubscription(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, subscription)
}
