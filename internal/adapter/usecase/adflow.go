package usecase

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"publicaya/internal/core/domain"
)

// ErrAdViewInProgress is returned when Start is called while a view is
// already running.
var ErrAdViewInProgress = errors.New("ad view already in progress")

// OutcomeSource draws the result of a simulated ad view. The default draws
// true with the configured probability; tests inject deterministic ones.
type OutcomeSource func() bool

// RandomOutcome returns an OutcomeSource succeeding with probability p.
func RandomOutcome(p float64) OutcomeSource {
	return func() bool { return rand.Float64() < p }
}

// AdInteraction is the state machine for one simulated ad view. Starting
// moves it to viewing, the flow suspends for the playback delay with no
// cancellation path, then the outcome source decides between
// viewed-success and viewed-failure and the callback is told. Reset
// discards any outcome not yet acted upon.
type AdInteraction struct {
	delay   time.Duration
	outcome OutcomeSource

	mu    sync.Mutex
	state domain.AdViewState
}

// NewAdInteraction builds an idle interaction with the given playback
// delay and outcome source.
func NewAdInteraction(delay time.Duration, outcome OutcomeSource) *AdInteraction {
	return &AdInteraction{delay: delay, outcome: outcome, state: domain.AdViewIdle}
}

// State returns the current flow state.
func (a *AdInteraction) State() domain.AdViewState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Reset returns the flow to idle.
func (a *AdInteraction) Reset() {
	a.mu.Lock()
	a.state = domain.AdViewIdle
	a.mu.Unlock()
}

// Start runs one view to completion and reports the outcome through
// onViewed. The caller, not the flow, is responsible for crediting any
// reward.
func (a *AdInteraction) Start(adID string, onViewed func(adID string, success bool)) (domain.AdViewState, error) {
	a.mu.Lock()
	if a.state == domain.AdViewViewing {
		a.mu.Unlock()
		return a.state, ErrAdViewInProgress
	}
	a.state = domain.AdViewViewing
	a.mu.Unlock()

	// simulated playback; deliberately not cancellable
	time.Sleep(a.delay)

	success := a.outcome()
	state := domain.AdViewFailure
	if success {
		state = domain.AdViewSuccess
	}

	a.mu.Lock()
	a.state = state
	a.mu.Unlock()

	if onViewed != nil {
		onViewed(adID, success)
	}
	return state, nil
}
