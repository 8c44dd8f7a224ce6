package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

type mockAccountStore struct{ mock.Mock }

func (m *mockAccountStore) Create(ctx context.Context, a *domain.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	acct, _ := args.Get(0).(*domain.Account)
	return acct, args.Error(1)
}

func (m *mockAccountStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileStore struct{ mock.Mock }

func (m *mockProfileStore) Insert(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func (m *mockProfileStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	args := m.Called(ctx, role)
	ps, _ := args.Get(0).([]domain.Profile)
	return ps, args.Error(1)
}

func (m *mockProfileStore) AdjustBalance(ctx context.Context, userID uuid.UUID, amount int64) error {
	return m.Called(ctx, userID, amount).Error(0)
}

type mockTransactionStore struct{ mock.Mock }

func (m *mockTransactionStore) Insert(ctx context.Context, t *domain.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTransactionStore) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).([]domain.Transaction)
	return ts, args.Error(1)
}

func (m *mockTransactionStore) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionStore) SetStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockCampaignStore struct{ mock.Mock }

func (m *mockCampaignStore) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeNotifier records posted notifications for assertions.
type fakeNotifier struct {
	mu      sync.Mutex
	nextID  int64
	notices []domain.Notification
}

func (f *fakeNotifier) Notify(kind domain.NotificationKind, title, description string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.notices = append(f.notices, domain.Notification{
		ID: f.nextID, Kind: kind, Title: title, Description: description, Open: true,
	})
	return f.nextID
}

func (f *fakeNotifier) Update(id int64, title, description string) {}
func (f *fakeNotifier) Dismiss(id int64)                           {}
func (f *fakeNotifier) DismissAll()                                {}

func (f *fakeNotifier) Snapshot() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, len(f.notices))
	copy(out, f.notices)
	return out
}

func (f *fakeNotifier) byKind(kind domain.NotificationKind) []domain.Notification {
	var out []domain.Notification
	for _, n := range f.Snapshot() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// stubAuth satisfies port.AuthUseCase for resolver tests; only
// CurrentSession matters there.
type stubAuth struct {
	sessions map[string]*domain.Session
}

func (s *stubAuth) SignIn(ctx context.Context, email, password string) port.AuthResult {
	return port.AuthResult{}
}

func (s *stubAuth) SignUp(ctx context.Context, email, password string, role domain.Role) port.AuthResult {
	return port.AuthResult{}
}

func (s *stubAuth) SignOut(ctx context.Context, token string) port.AuthResult {
	return port.AuthResult{}
}

func (s *stubAuth) ForgotPassword(ctx context.Context, email string) port.AuthResult {
	return port.AuthResult{}
}

func (s *stubAuth) ResetPassword(ctx context.Context, token, password string) port.AuthResult {
	return port.AuthResult{}
}

func (s *stubAuth) CurrentSession(token string) (*domain.Session, error) {
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, port.ErrInvalidSession
}
