package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"publicaya/internal/core/domain"
)

// handlePersonalDashboard serves the personal user's read model.
func (h *Handler) handlePersonalDashboard(w http.ResponseWriter, r *http.Request) {
	user := h.requireRole(w, r, domain.RolePersonal)
	if user == nil {
		return
	}
	overview, err := h.personal.Overview(r.Context(), user)
	if err != nil {
		h.logger.Error("personal overview error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, overview)
}

// handleAdView runs the simulated ad interaction for the signed-in
// personal user and reports the outcome.
func (h *Handler) handleAdView(w http.ResponseWriter, r *http.Request) {
	user := h.requireRole(w, r, domain.RolePersonal)
	if user == nil {
		return
	}
	adID := chi.URLParam(r, "id")
	if adID == "" {
		http.Error(w, "missing ad id", http.StatusBadRequest)
		return
	}
	result, err := h.personal.ViewAd(r.Context(), user.Profile.ID, adID)
	if err != nil {
		h.logger.Error("ad view error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, result)
}
