package lock

import (
	"context"
	"sync"
	"time"
)

// key -> chan struct{} closed on release
var lockMap sync.Map

// WithDelay runs safeCode while holding key within this process. It waits up to wait
// for the key and reports false when the key stays busy or ctx ends first.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	for {
		held := make(chan struct{})
		current, loaded := lockMap.LoadOrStore(key, held)
		if !loaded {
			defer func() {
				lockMap.Delete(key)
				close(held)
			}()
			return true, safeCode()
		}
		select {
		case <-current.(chan struct{}):
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
