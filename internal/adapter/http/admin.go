package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"publicaya/internal/core/domain"
)

// handleAdminDashboard serves the aggregated admin read model.
func (h *Handler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	overview, err := h.admin.Overview(r.Context())
	if err != nil {
		h.logger.Error("admin overview error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, overview)
}

type approveRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Amount int64     `json:"amount"`
}

// handleApprove approves a pending transaction and credits its amount to
// the user. On success the response carries the refreshed overview.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	txID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	var req approveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	overview, err := h.admin.Approve(r.Context(), txID, req.UserID, req.Amount)
	if err != nil {
		h.logger.Error("approve transaction error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, overview)
}

// handleReject rejects a pending transaction.
func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	txID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	overview, err := h.admin.Reject(r.Context(), txID)
	if err != nil {
		h.logger.Error("reject transaction error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, overview)
}
