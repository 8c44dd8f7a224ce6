package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

func TestPersonalOverview(t *testing.T) {
	u := NewPersonalUseCase(&mockTransactionStore{}, &fakeNotifier{}, 0, func() bool { return true }, 50)

	user := &port.ResolvedUser{
		Profile: domain.Profile{
			Balance:            12_50,
			ReferralCode:       "ab12cd34",
			ReferredUsersCount: 3,
		},
		Role: domain.RolePersonal,
	}
	overview, err := u.Overview(context.Background(), user)
	require.NoError(t, err)
	require.EqualValues(t, 1250, overview.Balance)
	require.EqualValues(t, 1234, overview.AdsViewed)
	require.Equal(t, 3, overview.ReferredUsersCount)
	require.Equal(t, "ab12cd34", overview.ReferralCode)
}

// TestViewAdSuccessRecordsPendingReward: a successful view credits the
// reward as a pending ad-reward transaction awaiting admin review.
func TestViewAdSuccessRecordsPendingReward(t *testing.T) {
	txs := &mockTransactionStore{}
	notifier := &fakeNotifier{}
	userID := uuid.New()

	var recorded *domain.Transaction
	txs.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Transaction")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.Transaction)
		}).
		Return(nil)

	u := NewPersonalUseCase(txs, notifier, 0, func() bool { return true }, 50)
	result, err := u.ViewAd(context.Background(), userID, "ad-7")

	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, domain.AdViewSuccess, result.State)
	require.Equal(t, "ad-7", result.AdID)

	require.NotNil(t, recorded)
	require.Equal(t, userID, recorded.UserID)
	require.EqualValues(t, 50, recorded.Amount)
	require.Equal(t, domain.TxAdReward, recorded.Kind)
	require.Equal(t, domain.TxPending, recorded.Status)
	require.Len(t, notifier.byKind(domain.NotifySuccess), 1)
}

// TestViewAdFailureCreditsNothing pins the forced-failure scenario: the
// outcome reaches the caller as (adID, false) and no reward is recorded.
func TestViewAdFailureCreditsNothing(t *testing.T) {
	txs := &mockTransactionStore{}
	notifier := &fakeNotifier{}

	u := NewPersonalUseCase(txs, notifier, 0, func() bool { return false }, 50)
	result, err := u.ViewAd(context.Background(), uuid.New(), "ad-7")

	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, domain.AdViewFailure, result.State)
	txs.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	require.NotEmpty(t, notifier.byKind(domain.NotifyError))
}

func TestViewAdRewardInsertFailure(t *testing.T) {
	txs := &mockTransactionStore{}
	notifier := &fakeNotifier{}
	txs.On("Insert", mock.Anything, mock.Anything).Return(errors.New("down"))

	u := NewPersonalUseCase(txs, notifier, 0, func() bool { return true }, 50)
	_, err := u.ViewAd(context.Background(), uuid.New(), "ad-7")

	require.Error(t, err)
	require.NotEmpty(t, notifier.byKind(domain.NotifyError))
	require.Empty(t, notifier.byKind(domain.NotifySuccess))
}
