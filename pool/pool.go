// ABOUTME: Worker pool for parallelizing batch work over file content
// ABOUTME: Submit-and-wait tasks plus a chunked range helper for line slices

package pool

import (
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines for parallel task execution
type WorkerPool struct {
	workers  int
	taskChan chan func()
	workerWg sync.WaitGroup // tracks worker goroutines lifetime
	taskWg   sync.WaitGroup // tracks submitted tasks completion
}

// New creates a worker pool sized to available CPUs
// The bufferSize determines the task channel capacity
func New(bufferSize int) *WorkerPool {
	numWorkers := runtime.NumCPU()
	pool := &WorkerPool{
		workers:  numWorkers,
		taskChan: make(chan func(), bufferSize),
	}

	for range numWorkers {
		pool.workerWg.Add(1)

		go func() {
			defer pool.workerWg.Done()

			for task := range pool.taskChan {
				task()
				pool.taskWg.Done()
			}
		}()
	}

	return pool
}

// Submit adds a task to the pool
// Blocks if the task channel is full
func (p *WorkerPool) Submit(task func()) {
	p.taskWg.Add(1)
	p.taskChan <- task
}

// Wait blocks until all submitted tasks have completed
func (p *WorkerPool) Wait() {
	p.taskWg.Wait()
}

// Close shuts down the worker pool and waits for all workers to exit
func (p *WorkerPool) Close() {
	close(p.taskChan)
	p.workerWg.Wait()
}

// ForEachChunk splits [0, n) into contiguous chunks of at most chunkSize
// and runs fn(start, end) for each chunk across the pool, then waits for
// all chunks to finish. fn must be safe to call concurrently on disjoint
// ranges.
func (p *WorkerPool) ForEachChunk(n, chunkSize int, fn func(start, end int)) {
	if chunkSize < 1 {
		chunkSize = 1
	}

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)

		p.Submit(func() {
			fn(start, end)
		})
	}

	p.Wait()
}
