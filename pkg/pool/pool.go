// Package pool provides a bounded worker pool for fanning independent,
// CPU-bound per-peer work (zero-knowledge proof generation, encryption) out
// across goroutines within a single round's Finalize. A Pool never crosses
// a round boundary: each round creates or borrows one, uses it
// synchronously, and discards it.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs work items with bounded parallelism.
type Pool struct {
	workers int
}

// New returns a Pool that runs at most workers items at once. Passing
// workers <= 0 selects runtime.GOMAXPROCS(0).
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Parallelize calls fn(i) for every i in [0, n), returning the results in
// order. Each call site in this module uses it over independent per-peer
// work (one peer's proof/ciphertext does not depend on another's), so the
// scheduling order does not matter.
func (p *Pool) Parallelize(n int, fn func(i int) interface{}) []interface{} {
	results := make([]interface{}, n)
	if n == 0 {
		return results
	}

	sem := make(chan struct{}, p.workers)
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			results[i] = fn(i)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
