package configs

import "time"

// Ads configures the simulated ad-view flow. ViewDelay is the artificial
// playback time, SuccessRate the probability a view succeeds and
// RewardCents the pending reward recorded for a successful view.
type Ads struct {
	ViewDelay   time.Duration `env:"VIEW_DELAY" envDefault:"3s"`
	SuccessRate float64       `env:"SUCCESS_RATE" envDefault:"0.8"`
	RewardCents int64         `env:"REWARD_CENTS" envDefault:"50"`
}
