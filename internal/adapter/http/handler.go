package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"publicaya/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it resolves sessions, gates dashboards by role and delegates to the use
// cases. Routes are registered on a chi.Router.
type Handler struct {
	auth     port.AuthUseCase
	resolver port.SessionResolver
	personal port.PersonalUseCase
	company  port.CompanyUseCase
	admin    port.AdminUseCase
	notifier port.Notifier
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(auth port.AuthUseCase, resolver port.SessionResolver, personal port.PersonalUseCase, company port.CompanyUseCase, admin port.AdminUseCase, notifier port.Notifier, logger *slog.Logger) *Handler {
	h := &Handler{
		auth:     auth,
		resolver: resolver,
		personal: personal,
		company:  company,
		admin:    admin,
		notifier: notifier,
		logger:   logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/sign-in", h.handleSignIn)
		r.Post("/auth/sign-up", h.handleSignUp)
		r.Post("/auth/sign-out", h.handleSignOut)
		r.Post("/auth/forgot-password", h.handleForgotPassword)
		r.Post("/auth/reset-password", h.handleResetPassword)

		r.Get("/me", h.handleMe)
		r.Get("/session", h.handleSession)

		r.Get("/dashboard/personal", h.handlePersonalDashboard)
		r.Post("/ads/{id}/view", h.handleAdView)

		r.Get("/dashboard/company", h.handleCompanyDashboard)
		r.Post("/dashboard/company/funds", h.handleCompanyStub)
		r.Post("/dashboard/company/campaigns", h.handleCompanyStub)

		r.Get("/dashboard/admin", h.handleAdminDashboard)
		r.Post("/admin/transactions/{id}/approve", h.handleApprove)
		r.Post("/admin/transactions/{id}/reject", h.handleReject)

		r.Get("/notifications", h.handleNotifications)
		r.Delete("/notifications", h.handleDismissAll)
		r.Delete("/notifications/{id}", h.handleDismiss)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
