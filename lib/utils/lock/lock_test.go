package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run(`returns the code error`, func(t *testing.T) {
		ok, err := WithDelay(ctx, "err", time.Second, func() error { return errors.New("boom") })
		require.True(t, ok)
		require.EqualError(t, err, "boom")
	})

	t.Run(`serializes holders of one key`, func(t *testing.T) {
		var mu sync.Mutex
		active, maxActive := 0, 0
		wg := sync.WaitGroup{}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(ctx, "shared", 5*time.Second, func() error {
					mu.Lock()
					active++
					if active > maxActive {
						maxActive = active
					}
					mu.Unlock()
					time.Sleep(time.Millisecond)
					mu.Lock()
					active--
					mu.Unlock()
					return nil
				})
				assert.True(t, ok)
				assert.Nil(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, 1, maxActive)
	})

	t.Run(`gives up after wait`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "busy", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(ctx, "busy", 10*time.Millisecond, func() error { return nil })
		require.False(t, ok)
		require.Nil(t, err)
		close(release)
	})
}
