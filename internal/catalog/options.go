package catalog

import (
	"time"

	"storefront/internal/config"
	"storefront/pkg/lock"
)

// Options configure the catalog services. They are usually derived from the
// application config with NewOptions and completed with a Locker.
type Options struct {
	// Now stamps purchases that arrive without a date. Defaults to time.Now.
	Now func() time.Time
	// Locker serializes purchases per (user, content). Defaults to lock.Noop.
	Locker lock.Locker
	// LockTTL bounds how long a purchase lock is held if never released.
	LockTTL time.Duration
	// JobMaxAttempts is the retry budget of PurchaseRecorded jobs.
	JobMaxAttempts int
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LockTTL:        cfg.Redis.LockTTL,
		JobMaxAttempts: cfg.Worker.MaxAttempts,
	}
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Locker == nil {
		o.Locker = lock.Noop{}
	}
	if o.LockTTL <= 0 {
		o.LockTTL = 10 * time.Second
	}

	return o
}
