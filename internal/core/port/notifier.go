package port

import "publicaya/internal/core/domain"

// Notifier is the process-wide channel for ephemeral user-facing status
// messages. It holds at most one visible notification: posting a new one
// evicts the previous. Implementations are injected, never global.
type Notifier interface {
	// Notify posts a notification and returns its identifier.
	Notify(kind domain.NotificationKind, title, description string) int64
	// Update replaces title and description of a live notification in place.
	Update(id int64, title, description string)
	// Dismiss hides a notification; it is removed later by its timer.
	Dismiss(id int64)
	DismissAll()
	// Snapshot returns the currently held notifications (at most one).
	Snapshot() []domain.Notification
}
