package orderbook

import "time"

// Options represents configuration options for the Orderbook.
type Options struct {
	// ExpiryHour is the local-time hour at which good-for-day orders are
	// cancelled.
	ExpiryHour int
	// ExpirySlack is added to the computed wait so the sweep never fires
	// ahead of the cutoff.
	ExpirySlack time.Duration
	// Clock supplies the current time; tests substitute it.
	Clock func() time.Time
}

// DefaultOptions returns the default orderbook options.
func DefaultOptions() *Options {
	return &Options{
		ExpiryHour:  16,
		ExpirySlack: 100 * time.Millisecond,
		Clock:       time.Now,
	}
}
