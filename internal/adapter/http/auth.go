package httpadapter

import (
	"encoding/json"
	"net/http"

	"publicaya/internal/core/domain"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// handleSignIn authenticates a credential pair. Authentication failures
// are not transport errors: the response keeps the 200 shape and carries
// the backend's literal message so the form stays usable for retry.
func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.auth.SignIn(r.Context(), req.Email, req.Password))
}

// handleSignUp registers a new principal with the requested role and its
// profile row.
func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.auth.SignUp(r.Context(), req.Email, req.Password, domain.Role(req.Role)))
}

// handleSignOut broadcasts the signed-out event.
func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.auth.SignOut(r.Context(), bearerToken(r)))
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// handleForgotPassword starts the recovery flow. The response message is
// the same whether or not the email has an account.
func (h *Handler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.auth.ForgotPassword(r.Context(), req.Email))
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// handleResetPassword consumes a recovery token and stores a new password.
func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, h.auth.ResetPassword(r.Context(), req.Token, req.Password))
}
