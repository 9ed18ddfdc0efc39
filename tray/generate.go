// SPDX-License-Identifier: MIT

package tray

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/growthgrid/growth"
)

// Result pairs a tray with its generated matrix.
type Result struct {
	Tray       Tray
	Allocation growth.Allocation
	Matrix     *growth.Matrix
}

// GenerateAll builds the matrix of every tray using at most workers
// goroutines (workers <= 0 means runtime.GOMAXPROCS(0)).
// Results are in the order of trays. The only error is ctx.Err() when the
// context is cancelled before every tray is generated.
func GenerateAll(ctx context.Context, trays []Tray, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(trays))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range trays {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := trays[i]
			results[i] = Result{Tray: t, Allocation: t.Allocation(), Matrix: t.Matrix()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; the parent tells whether trays were skipped.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
