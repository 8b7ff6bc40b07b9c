package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to traveler profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
	AuthService        *services.AuthService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService, authService *services.AuthService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService, AuthService: authService}
}

// HandleGetMyProfile returns the caller's profile, creating one with
// defaults on first access.
func (c *UserProfileController) HandleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	account, err := c.AuthService.GetAccount(r.Context(), identity.Email)
	if err != nil {
		account = nil
	}

	profile, err := c.UserProfileService.GetOrCreateProfile(r.Context(), identity, account)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profile":            profile,
		"availableInterests": models.AvailableInterests,
	})
}

// HandleGetProfileByID fetches any traveler's profile by record id.
func (c *UserProfileController) HandleGetProfileByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	profile, err := c.UserProfileService.GetProfile(r.Context(), identity, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

// HandleUpdateMyProfile stores the submitted edit draft over the caller's
// own profile.
func (c *UserProfileController) HandleUpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var draft models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := c.UserProfileService.UpdateProfile(r.Context(), identity, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": updated,
	})
}

// HandleToggleInterest flips one interest chip on the caller's profile.
func (c *UserProfileController) HandleToggleInterest(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var request struct {
		Interest string `json:"interest"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profile, err := c.UserProfileService.GetOrCreateProfile(r.Context(), identity, nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	draft := *profile
	draft.Interests = services.ToggleInterest(profile.Interests, request.Interest)

	updated, err := c.UserProfileService.UpdateProfile(r.Context(), identity, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, updated)
}
