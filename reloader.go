package circumflex

import (
	"fmt"
	"sync"
	"time"
)

// Reloader is a registry of configuration reload triggers.
//
// Typical callbacks are Config.Reload and cache purges that must follow a
// configuration change.
type Reloader struct {
	sync.Mutex

	// SkipInterval defines minimal duration between two reloads (flood protection).
	SkipInterval time.Duration

	// Callbacks contains a list of functions to call on reload.
	Callbacks []func() error

	lastRun time.Time
}

// Reload triggers registered callbacks and fails on the first callback error.
func (r *Reloader) Reload() error {
	if r.Callbacks == nil {
		return ErrNothingToReload
	}

	r.Lock()
	defer r.Unlock()

	if r.SkipInterval == 0 {
		r.SkipInterval = 15 * time.Second
	}

	if time.Since(r.lastRun) < r.SkipInterval {
		return fmt.Errorf("%w at %s, %s did not pass",
			ErrAlreadyReloaded, r.lastRun.String(), r.SkipInterval.String())
	}

	r.lastRun = time.Now()

	for _, cb := range r.Callbacks {
		if err := cb(); err != nil {
			return err
		}
	}

	return nil
}
