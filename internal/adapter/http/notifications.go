package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleNotifications returns the currently visible notification, if any.
func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.notifier.Snapshot())
}

// handleDismiss hides a notification by identifier.
func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid notification id", http.StatusBadRequest)
		return
	}
	h.notifier.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleDismissAll hides every notification.
func (h *Handler) handleDismissAll(w http.ResponseWriter, r *http.Request) {
	h.notifier.DismissAll()
	w.WriteHeader(http.StatusNoContent)
}
