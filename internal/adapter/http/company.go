package httpadapter

import (
	"log/slog"
	"net/http"

	"publicaya/internal/core/domain"
)

// handleCompanyDashboard serves the company read model.
func (h *Handler) handleCompanyDashboard(w http.ResponseWriter, r *http.Request) {
	user := h.requireRole(w, r, domain.RoleCompany)
	if user == nil {
		return
	}
	overview, err := h.company.Overview(r.Context(), user)
	if err != nil {
		h.logger.Error("company overview error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, overview)
}

// handleCompanyStub backs the fund-add and campaign-create affordances.
// They carry no business logic yet.
func (h *Handler) handleCompanyStub(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, domain.RoleCompany) == nil {
		return
	}
	http.Error(w, "Disponible próximamente.", http.StatusNotImplemented)
}
