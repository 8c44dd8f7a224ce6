package configs

import "time"

// Notify configures the notification channel. RemoveDelay is how long a
// posted notification lives before it is removed, unless dismissed first.
type Notify struct {
	RemoveDelay time.Duration `env:"REMOVE_DELAY" envDefault:"1000s"`
}
