package syncs

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(3)

	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Acquire()
			defer sem.Release()
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
		}()
	}
	wg.Wait()

	if p := peak.Load(); p > 3 {
		t.Fatalf("expected at most 3 concurrent holders, got %d", p)
	}
}
