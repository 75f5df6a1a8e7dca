// Copyright 2026 The go-bitexpand Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting a range
// of indices across goroutines. A Pool is created once and reused, so large
// batch expansions do not pay for spawning goroutines on every call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(src), 16, func(start, end int) {
//	    expandRange(dst[start:end], src[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held for reading while tasks are queued and for writing while
	// workC is closed, so Close never races a send.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn(t.start, t.end)
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool once pending work completes. It may be called
// concurrently with ParallelFor, and calling it multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// Chunks returns the [start, end) ranges ParallelFor hands to workers for n
// items. Every range except the last has a length that is a multiple of
// grain; grain values below 1 are treated as 1.
func Chunks(n, workers, grain int) [][2]int {
	if n <= 0 {
		return nil
	}
	if grain < 1 {
		grain = 1
	}
	workers = max(1, min(workers, (n+grain-1)/grain))

	size := (n + workers - 1) / workers
	size = (size + grain - 1) / grain * grain

	chunks := make([][2]int, 0, workers)
	for start := 0; start < n; start += size {
		chunks = append(chunks, [2]int{start, min(start+size, n)})
	}
	return chunks
}

// ParallelFor calls fn on disjoint ranges covering [0, n) and blocks until all
// calls return. Range boundaries fall on multiples of grain. On a closed pool,
// or when only one range is needed, fn runs once on the calling goroutine.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	chunks := Chunks(n, p.numWorkers, grain)
	if len(chunks) == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		p.workC <- task{start: c[0], end: c[1], fn: fn, done: &wg}
	}
	p.mu.RUnlock()

	wg.Wait()
}
