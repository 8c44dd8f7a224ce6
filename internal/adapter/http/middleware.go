package httpadapter

import (
	"net/http"
	"strings"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// bearerToken extracts the session token from the Authorization header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// requireRole resolves the request's session and re-validates that the
// derived role matches the dashboard's required role. This duplicates the
// role router's decision on purpose: a mid-session role change or a direct
// navigation must never reach privileged content, it gets redirected to
// the unauthenticated root instead. Returns nil when the redirect was
// issued.
func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, role domain.Role) *port.ResolvedUser {
	user, got, err := h.resolver.ResolveToken(r.Context(), bearerToken(r))
	if err != nil || user == nil || got != role {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return user
}
