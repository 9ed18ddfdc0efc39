// SPDX-License-Identifier: MIT

package growth

// Option customizes a Generate call.
type Option func(*config)

type config struct {
	alertPercent float64
}

func newConfig(opts []Option) config {
	cfg := config{alertPercent: DefaultAlertPercent}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithAlertPercent sets the percentage of filled cells marked Alert.
// Values outside [0,100] are accepted; the resulting count is clamped to
// [0, filled].
func WithAlertPercent(p float64) Option {
	return func(c *config) {
		c.alertPercent = p
	}
}
