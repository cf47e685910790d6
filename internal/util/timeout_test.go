package util

import (
	"sync"
	"testing"
	"time"
)

func TestWaitWithTimeout(t *testing.T) {
	t.Run("finishes in time", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			wg.Done()
		}()

		if !WaitWithTimeout(&wg, time.Second) {
			t.Error("WaitWithTimeout returned false for a group that finished")
		}
	})

	t.Run("times out", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		defer wg.Done()

		if WaitWithTimeout(&wg, 20*time.Millisecond) {
			t.Error("WaitWithTimeout returned true for a group that never finished")
		}
	})
}
