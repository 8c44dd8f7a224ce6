package usecase

import (
	"context"
	"sync"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// SessionResolver derives the signed-in user and their role from a session
// token. It also keeps a resolved state for the token it holds and re-runs
// the resolution whenever the auth state changes, releasing its event
// subscription on Close.
type SessionResolver struct {
	auth     port.AuthUseCase
	profiles port.ProfileStore
	notifier port.Notifier
	sub      port.Subscription

	mu      sync.Mutex
	token   string
	loading bool
	user    *port.ResolvedUser
	role    domain.Role
	done    chan struct{}
}

// NewSessionResolver subscribes to auth events and performs an initial
// resolution pass. Close must be called to release the subscription.
func NewSessionResolver(auth port.AuthUseCase, profiles port.ProfileStore, notifier port.Notifier, events port.AuthEvents) *SessionResolver {
	r := &SessionResolver{
		auth:     auth,
		profiles: profiles,
		notifier: notifier,
		sub:      events.Subscribe(),
		role:     domain.RoleUnassigned,
		done:     make(chan struct{}),
	}
	r.resolve(context.Background())
	go r.watch()
	return r
}

// watch re-runs resolution on every relevant auth-state change until the
// subscription is closed.
func (r *SessionResolver) watch() {
	defer close(r.done)
	for ev := range r.sub.C() {
		switch ev.Kind {
		case domain.EventSignedIn:
			r.mu.Lock()
			r.token = ev.Token
			r.mu.Unlock()
		case domain.EventUserUpdated:
			// re-resolve with the held token unless a new one is carried
			if ev.Token != "" {
				r.mu.Lock()
				r.token = ev.Token
				r.mu.Unlock()
			}
		case domain.EventSignedOut:
			r.mu.Lock()
			r.token = ""
			r.mu.Unlock()
		default:
			continue
		}
		r.resolve(context.Background())
	}
}

// Close releases the event subscription and waits for the watch loop to
// stop.
func (r *SessionResolver) Close() {
	r.sub.Close()
	<-r.done
}

// State reports the current resolution: whether a pass is in flight, the
// resolved user (nil when signed out) and the derived role.
func (r *SessionResolver) State() (loading bool, user *port.ResolvedUser, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading, r.user, r.role
}

// resolve performs one pass for the held token. The loading flag toggles
// around the pass and the mutex keeps at most one resolution visible at a
// time.
func (r *SessionResolver) resolve(ctx context.Context) {
	r.mu.Lock()
	r.loading = true
	token := r.token
	r.mu.Unlock()

	user, role, _ := r.ResolveToken(ctx, token)

	r.mu.Lock()
	r.user = user
	r.role = role
	r.loading = false
	r.mu.Unlock()
}

// ResolveToken performs a single stateless resolution pass: verify the
// session, fetch the matching profile and derive the role. No session is
// not an error. A profile fetch failure after a valid session clears the
// user state and surfaces an error notification; the backend session may
// still exist, but the application treats the condition as fatal.
func (r *SessionResolver) ResolveToken(ctx context.Context, token string) (*port.ResolvedUser, domain.Role, error) {
	if token == "" {
		return nil, domain.RoleUnassigned, nil
	}
	session, err := r.auth.CurrentSession(token)
	if err != nil {
		return nil, domain.RoleUnassigned, nil
	}

	profile, err := r.profiles.GetByID(ctx, session.UserID)
	if err != nil {
		r.notifier.Notify(domain.NotifyError, "Error", "Failed to load user profile.")
		return nil, domain.RoleUnassigned, err
	}

	// merge session identity fields over the profile row
	merged := *profile
	merged.ID = session.UserID
	if merged.Email == "" {
		merged.Email = session.Email
	}
	role := domain.RoleFromString(string(profile.Role))
	return &port.ResolvedUser{Profile: merged, Role: role}, role, nil
}
