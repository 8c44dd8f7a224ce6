package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// adsViewedPlaceholder mirrors the static counter shown on the personal
// dashboard until per-user view tracking lands.
const adsViewedPlaceholder = 1234

// PersonalUseCase serves the personal dashboard: balance, referral data
// and the simulated ad-view flow.
type PersonalUseCase struct {
	transactions port.TransactionStore
	notifier     port.Notifier
	viewDelay    time.Duration
	outcome      OutcomeSource
	rewardCents  int64
}

// NewPersonalUseCase constructs the personal dashboard use case.
func NewPersonalUseCase(transactions port.TransactionStore, notifier port.Notifier, viewDelay time.Duration, outcome OutcomeSource, rewardCents int64) *PersonalUseCase {
	return &PersonalUseCase{
		transactions: transactions,
		notifier:     notifier,
		viewDelay:    viewDelay,
		outcome:      outcome,
		rewardCents:  rewardCents,
	}
}

// Overview builds the personal read model from the resolved profile.
func (u *PersonalUseCase) Overview(ctx context.Context, user *port.ResolvedUser) (*port.PersonalOverview, error) {
	return &port.PersonalOverview{
		Balance:            user.Profile.Balance,
		AdsViewed:          adsViewedPlaceholder,
		ReferredUsersCount: user.Profile.ReferredUsersCount,
		ReferralCode:       user.Profile.ReferralCode,
	}, nil
}

// ViewAd runs one ad interaction to completion. The flow only reports the
// outcome; this use case is the caller that credits the reward, by
// recording a pending ad-reward transaction for the admin to review.
func (u *PersonalUseCase) ViewAd(ctx context.Context, userID uuid.UUID, adID string) (*port.AdViewResult, error) {
	flow := NewAdInteraction(u.viewDelay, u.outcome)

	var rewardErr error
	state, err := flow.Start(adID, func(id string, success bool) {
		if !success {
			u.notifier.Notify(domain.NotifyError, "Anuncio", "Hubo un problema al ver el anuncio.")
			return
		}
		tx := &domain.Transaction{
			ID:     uuid.New(),
			UserID: userID,
			Amount: u.rewardCents,
			Kind:   domain.TxAdReward,
			Status: domain.TxPending,
		}
		if rewardErr = u.transactions.Insert(ctx, tx); rewardErr != nil {
			u.notifier.Notify(domain.NotifyError, "Error", "No se pudo registrar la recompensa.")
			return
		}
		u.notifier.Notify(domain.NotifySuccess, "Anuncio visto", "¡Recompensa obtenida!")
	})
	if err != nil {
		return nil, err
	}
	if rewardErr != nil {
		return nil, rewardErr
	}
	return &port.AdViewResult{
		AdID:    adID,
		Success: state == domain.AdViewSuccess,
		State:   state,
	}, nil
}
