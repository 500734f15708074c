// ABOUTME: Tests for the worker pool submit/wait lifecycle
// ABOUTME: Verifies chunked range fan-out covers every index exactly once

package pool

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSubmitAndWait(t *testing.T) {
	p := New(16)
	defer p.Close()

	var counter atomic.Int64

	for range 100 {
		p.Submit(func() {
			counter.Add(1)
		})
	}

	p.Wait()

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
}

func TestWaitWithNoTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	// Wait on an idle pool returns immediately.
	p.Wait()
}

func TestReuseAfterWait(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64

	for range 3 {
		for range 10 {
			p.Submit(func() {
				counter.Add(1)
			})
		}

		p.Wait()
	}

	if got := counter.Load(); got != 30 {
		t.Errorf("counter = %d, want 30", got)
	}
}

func TestForEachChunk(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		chunkSize int
	}{
		{"even split", 100, 10},
		{"ragged tail", 103, 10},
		{"single chunk", 5, 100},
		{"chunk size one", 7, 1},
		{"chunk size floored", 7, 0},
		{"empty range", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(8)
			defer p.Close()

			seen := make([]int32, tt.n)
			var mu sync.Mutex
			ranges := 0

			p.ForEachChunk(tt.n, tt.chunkSize, func(start, end int) {
				mu.Lock()
				ranges++
				mu.Unlock()

				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})

			for i, count := range seen {
				if count != 1 {
					t.Errorf("index %d visited %d times, want 1", i, count)
				}
			}

			if tt.n == 0 && ranges != 0 {
				t.Errorf("empty range ran %d chunks, want 0", ranges)
			}
		})
	}
}
