package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

func TestResolveTokenAbsentSessionIsNotAnError(t *testing.T) {
	profiles := &mockProfileStore{}
	events := NewBroadcaster()

	r := NewSessionResolver(&stubAuth{}, profiles, &fakeNotifier{}, events)
	defer r.Close()

	user, role, err := r.ResolveToken(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, user)
	require.Equal(t, domain.RoleUnassigned, role)

	user, role, err = r.ResolveToken(context.Background(), "expired-token")
	require.NoError(t, err)
	require.Nil(t, user)
	require.Equal(t, domain.RoleUnassigned, role)
}

// TestResolveTokenProfileFailureClearsUser: a profile fetch failure after
// a valid session logs the user out of the application view and surfaces
// an error notification.
func TestResolveTokenProfileFailureClearsUser(t *testing.T) {
	id := uuid.New()
	auth := &stubAuth{sessions: map[string]*domain.Session{
		"tok": {UserID: id, Email: "a@x.com"},
	}}
	profiles := &mockProfileStore{}
	profiles.On("GetByID", mock.Anything, id).Return(nil, errors.New("timeout"))
	notifier := &fakeNotifier{}

	r := NewSessionResolver(auth, profiles, notifier, NewBroadcaster())
	defer r.Close()

	user, role, err := r.ResolveToken(context.Background(), "tok")
	require.Error(t, err)
	require.Nil(t, user)
	require.Equal(t, domain.RoleUnassigned, role)

	errs := notifier.byKind(domain.NotifyError)
	require.NotEmpty(t, errs)
	require.Equal(t, "Failed to load user profile.", errs[0].Description)
}

func TestResolveTokenUnknownRoleIsUnassigned(t *testing.T) {
	id := uuid.New()
	auth := &stubAuth{sessions: map[string]*domain.Session{
		"tok": {UserID: id, Email: "a@x.com"},
	}}
	profiles := &mockProfileStore{}
	profiles.On("GetByID", mock.Anything, id).
		Return(&domain.Profile{ID: id, Role: domain.Role("superuser")}, nil)

	r := NewSessionResolver(auth, profiles, &fakeNotifier{}, NewBroadcaster())
	defer r.Close()

	user, role, err := r.ResolveToken(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, domain.RoleUnassigned, role)
	require.Equal(t, port.ViewUnassigned, ViewFor(false, user, role))
}

// TestResolverFollowsAuthEvents drives the stateful resolver through a
// sign-in and a sign-out and checks the derived state after each.
func TestResolverFollowsAuthEvents(t *testing.T) {
	id := uuid.New()
	auth := &stubAuth{sessions: map[string]*domain.Session{
		"tok": {UserID: id, Email: "a@x.com"},
	}}
	profiles := &mockProfileStore{}
	profiles.On("GetByID", mock.Anything, id).
		Return(&domain.Profile{ID: id, Email: "a@x.com", Role: domain.RolePersonal}, nil)

	events := NewBroadcaster()
	r := NewSessionResolver(auth, profiles, &fakeNotifier{}, events)
	defer r.Close()

	loading, user, role := r.State()
	require.False(t, loading)
	require.Nil(t, user)
	require.Equal(t, domain.RoleUnassigned, role)

	events.Publish(domain.AuthEvent{Kind: domain.EventSignedIn, Token: "tok"})
	require.Eventually(t, func() bool {
		loading, user, role := r.State()
		return !loading && user != nil && role == domain.RolePersonal
	}, time.Second, 5*time.Millisecond)

	events.Publish(domain.AuthEvent{Kind: domain.EventSignedOut})
	require.Eventually(t, func() bool {
		loading, user, role := r.State()
		return !loading && user == nil && role == domain.RoleUnassigned
	}, time.Second, 5*time.Millisecond)
}

// TestResolverCloseReleasesSubscription: the listener must not leak past
// teardown.
func TestResolverCloseReleasesSubscription(t *testing.T) {
	events := NewBroadcaster()
	r := NewSessionResolver(&stubAuth{}, &mockProfileStore{}, &fakeNotifier{}, events)

	require.Equal(t, 1, events.Len())
	r.Close()
	require.Equal(t, 0, events.Len())
}
