package hungarian

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/hungarian/matrix"
	"golang.org/x/sync/errgroup"
)

// SolveBatch solves independent instances concurrently, at most workers at a
// time (workers <= 0 means runtime.GOMAXPROCS(0)). Each instance is solved
// sequentially on its own storage; results keep the input order.
//
// The context is checked before each instance starts. The first failure
// cancels the instances that have not started yet and is returned wrapped
// with its index; in that case the result slice is nil.
//
// Hooks in opts are shared by all workers and must be safe for concurrent use.
func SolveBatch(ctx context.Context, ws []matrix.Matrix, workers int, opts ...Option) ([]*Result[float64], error) {
	if _, err := gatherOptions(opts...); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*Result[float64], len(ws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range ws {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("instance %d: %w", k, err)
			}
			res, err := Solve(ws[k], opts...)
			if err != nil {
				return fmt.Errorf("instance %d: %w", k, err)
			}
			out[k] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
