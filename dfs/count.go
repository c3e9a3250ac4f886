// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// CountPaths drains a fresh PathFinder and returns the number of paths it
// yielded. A graph without start or without a reachable end counts 0.
func CountPaths(g Graph, opts ...Option) (int, error) {
	pf, err := NewPathFinder(g, opts...)
	if err != nil {
		return 0, err
	}

	n := 0
	for pf.Next() {
		n++
	}
	if err = pf.Err(); err != nil {
		return n, err
	}

	return n, nil
}

// Collect drains a fresh PathFinder and returns every yielded path in
// enumeration order.
func Collect(g Graph, opts ...Option) ([]Path, error) {
	pf, err := NewPathFinder(g, opts...)
	if err != nil {
		return nil, err
	}

	var out []Path
	for p := range pf.All() {
		out = append(out, p)
	}

	return out, pf.Err()
}

// CountAll counts paths under every policy, one enumerator per policy
// running in its own goroutine over the shared graph. opts apply to every
// enumerator; the policy and ctx are set per run.
//
// g must not be mutated while CountAll runs; graphs from builder.CaveGraph
// are frozen and always qualify.
//
// Errors from the individual runs are joined.
func CountAll(ctx context.Context, g Graph, opts ...Option) (Counts, error) {
	if isNilGraph(g) {
		return Counts{}, ErrGraphNil
	}

	policies := Policies()
	results := make([]int, len(policies))
	errs := make([]error, len(policies))

	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, p := range policies {
		go func(i int, p Policy) {
			defer wg.Done()

			runOpts := make([]Option, 0, len(opts)+2)
			runOpts = append(runOpts, opts...)
			runOpts = append(runOpts, WithPolicy(p), WithContext(ctx))
			n, err := CountPaths(g, runOpts...)
			if err != nil {
				err = fmt.Errorf("dfs: %s: %w", p, err)
			}
			results[i], errs[i] = n, err
		}(i, p)
	}
	wg.Wait()

	return Counts{Strict: results[PolicyStrict], RevisitOnce: results[PolicyRevisitOnce]}, errors.Join(errs...)
}
