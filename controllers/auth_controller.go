package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bowale01/spirited-travels-africa/middleware"
	"github.com/bowale01/spirited-travels-africa/services"
	"github.com/bowale01/spirited-travels-africa/utils"
)

// Screen states the mobile client moves through during authentication.
const (
	StateSignIn        = "signin"
	StateConfirm       = "confirm"
	StateAuthenticated = "authenticated"
)

// authMessages translates provider error codes into the exact wording the
// client shows. Unknown codes fall through to the raw message.
var authMessages = map[string]string{
	services.CodeUsernameExists:   "Account already exists with this email. Please sign in instead.",
	services.CodeInvalidPassword:  "Password must be at least 8 characters with uppercase, lowercase, number and symbol.",
	services.CodeInvalidParameter: "Please check all fields are filled correctly.",
	services.CodeUserNotFound:     "Account not found. Please sign up first or check your email address.",
	services.CodeNotAuthorized:    "Incorrect email or password. Please try again.",
	services.CodeUserNotConfirmed: "Please confirm your account first. Check your email for confirmation code.",
	services.CodeCodeMismatch:     "Invalid confirmation code. Please check the code and try again.",
	services.CodeCodeExpired:      "Confirmation code has expired. Please sign up again to receive a new one.",
}

// AuthController handles the sign-up, confirmation and sign-in flow.
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// HandleSignUp registers an unconfirmed account and moves the client to
// the confirmation screen.
func (c *AuthController) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	account, err := c.AuthService.SignUp(r.Context(), request.Email, request.Password, request.FirstName, request.LastName)
	if err != nil {
		c.writeAuthError(w, err)
		return
	}

	log.Printf("Account created for %s, awaiting confirmation", account.Email)
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Account created! Check your email for the confirmation code.",
		"nextState": StateConfirm,
		"email":     account.Email,
	})
}

// HandleConfirmSignUp redeems a confirmation code and moves the client to
// the sign-in screen. Confirmation never signs the user in by itself.
func (c *AuthController) HandleConfirmSignUp(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := c.AuthService.ConfirmSignUp(r.Context(), request.Email, request.Code); err != nil {
		c.writeAuthError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Account confirmed! You can now sign in.",
		"nextState": StateSignIn,
	})
}

// HandleSignIn verifies credentials and returns an access token.
func (c *AuthController) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, account, err := c.AuthService.SignIn(r.Context(), request.Email, request.Password)
	if err != nil {
		c.writeAuthError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"nextState": StateAuthenticated,
		"token":     token,
		"account": map[string]interface{}{
			"userId":    account.UserID,
			"email":     account.Email,
			"firstName": account.FirstName,
			"lastName":  account.LastName,
			"username":  account.Username,
		},
	})
}

// HandleSignOut revokes the caller's token.
func (c *AuthController) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing bearer token")
		return
	}
	c.AuthService.SignOut(token)

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Signed out.",
		"nextState": StateSignIn,
	})
}

func (c *AuthController) writeAuthError(w http.ResponseWriter, err error) {
	var authError *services.AuthError
	if !errors.As(err, &authError) {
		writeServiceError(w, err)
		return
	}

	message := authMessages[authError.Code]
	if message == "" {
		message = authError.Message
	}

	status := http.StatusBadRequest
	switch authError.Code {
	case services.CodeUserNotFound:
		status = http.StatusNotFound
	case services.CodeNotAuthorized, services.CodeUserNotConfirmed:
		status = http.StatusUnauthorized
	case services.CodeUsernameExists:
		status = http.StatusConflict
	}

	utils.WriteJSON(w, status, map[string]interface{}{
		"error": message,
		"code":  authError.Code,
	})
}
