// Copyright 2026 go-bitexpand Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expand

import (
	"go.uber.org/zap"

	"github.com/ajroetker/go-bitexpand/expand/contrib/workerpool"
)

// MinParallel is the smallest input a Batch splits across workers. Shorter
// inputs are expanded on the calling goroutine.
const MinParallel = 4096

// batchGrain keeps every worker's share a whole number of cache lines of
// output words.
const batchGrain = 16

// Batch expands large inputs on a persistent pool of workers.
//
// Usage:
//
//	b := expand.NewBatch(runtime.GOMAXPROCS(0))
//	defer b.Close()
//
//	words := make([]uint32, len(data))
//	b.ExpandBytes(words, data)
type Batch struct {
	pool *workerpool.Pool
}

// NewBatch starts a Batch with the given number of workers.
// If workers <= 0, GOMAXPROCS workers are used.
func NewBatch(workers int) *Batch {
	pool := workerpool.New(workers)
	Logger().Debug("expansion batch started",
		zap.Int("workers", pool.NumWorkers()),
		zap.String("dispatch", currentName))
	return &Batch{pool: pool}
}

// ExpandBytes behaves like the package-level ExpandBytes, splitting the work
// across the batch's workers when the input is at least MinParallel bytes.
// After Close it runs sequentially.
func (b *Batch) ExpandBytes(dst []uint32, src []byte) int {
	n := min(len(dst), len(src))
	if n < MinParallel {
		return ExpandBytes(dst[:n], src[:n])
	}
	b.pool.ParallelFor(n, batchGrain, func(start, end int) {
		expandKernel(dst[start:end], src[start:end])
	})
	return n
}

// Close stops the workers. Calling Close multiple times is safe.
func (b *Batch) Close() {
	b.pool.Close()
}
