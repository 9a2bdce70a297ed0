package utils

import (
	"sync"
	"time"
)

// Debounce returns a trigger that delays fn until wait has elapsed since the
// last call, and a cancel that drops any pending call. Both are safe for
// concurrent use.
func Debounce(fn func(), wait time.Duration) (trigger func(), cancel func()) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}

	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}

	return trigger, cancel
}
