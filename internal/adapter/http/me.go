package httpadapter

import (
	"net/http"

	"publicaya/internal/adapter/usecase"
	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

type meResponse struct {
	User *port.ResolvedUser `json:"user,omitempty"`
	Role domain.Role        `json:"role"`
	View port.View          `json:"view"`
}

type sessionResponse struct {
	Loading bool               `json:"loading"`
	User    *port.ResolvedUser `json:"user,omitempty"`
	Role    domain.Role        `json:"role"`
	View    port.View          `json:"view"`
}

// handleMe resolves the caller's session into a profile, role and view
// tag. A missing session or a profile-fetch failure both come back as the
// unauthenticated view; the latter also surfaced an error notification
// during resolution.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, role, err := h.resolver.ResolveToken(r.Context(), bearerToken(r))
	if err != nil {
		user, role = nil, domain.RoleUnassigned
	}
	h.writeJSON(w, meResponse{
		User: user,
		Role: role,
		View: usecase.ViewFor(false, user, role),
	})
}

// handleSession reports the resolver's event-driven view, including the
// loading flag while a resolution pass is in flight.
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	loading, user, role := h.resolver.State()
	h.writeJSON(w, sessionResponse{
		Loading: loading,
		User:    user,
		Role:    role,
		View:    usecase.ViewFor(loading, user, role),
	})
}
