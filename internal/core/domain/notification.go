package domain

// NotificationKind selects how a status message is presented.
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is an ephemeral user-facing status message. It is never
// persisted. Open reports whether the notification is still visible; a
// dismissed notification stays around (Open=false) until its removal timer
// fires.
type Notification struct {
	ID          int64
	Kind        NotificationKind
	Title       string
	Description string
	Open        bool
}
