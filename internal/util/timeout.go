package util

import (
	"sync"
	"time"
)

// WaitWithTimeout waits for the group up to timeout and reports whether it
// finished in time.
func WaitWithTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	waitDone := make(chan struct{})
	go func() {
		defer close(waitDone)
		wg.Wait()
	}()

	select {
	case <-waitDone:
		return true
	case <-time.After(timeout):
		return false
	}
}
