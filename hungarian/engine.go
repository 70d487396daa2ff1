package hungarian

import (
	"context"
	"fmt"
	"log/slog"
)

// engine holds the mutable state of one solve: the private copy of W, the
// duals, the matching in both directions, and the phase tree.
type engine[T any] struct {
	n       int
	w       [][]T
	ar      arith[T]
	u, v    []T
	rowMate []int
	colMate []int
	t       *tree
	opts    *Options
	debug   bool
	phase   int
	stats   Stats
}

// newEngine takes ownership of w (the caller passes a fresh copy) and sets
// the starting duals u[i] = max_j W[i][j], v[j] = 0.
func newEngine[T any](w [][]T, ar arith[T], opts *Options) *engine[T] {
	n := len(w)
	e := &engine[T]{
		n:       n,
		w:       w,
		ar:      ar,
		u:       make([]T, n),
		v:       make([]T, n),
		rowMate: make([]int, n),
		colMate: make([]int, n),
		t:       newTree(n),
		opts:    opts,
		debug:   opts.Logger.Enabled(context.Background(), slog.LevelDebug),
	}
	var i, j int
	for i = 0; i < n; i++ {
		best := w[i][0]
		for j = 1; j < n; j++ {
			if ar.less(best, w[i][j]) {
				best = w[i][j]
			}
		}
		e.u[i] = best
		e.v[i] = ar.zero()
		e.rowMate[i] = none
		e.colMate[i] = none
	}

	return e
}

func (e *engine[T]) slack(x, y int) T {
	return e.ar.sub(e.ar.add(e.u[x], e.v[y]), e.w[x][y])
}

// run executes exactly n phases; each one grows the matching by one edge.
func (e *engine[T]) run() error {
	for e.phase = 1; e.phase <= e.n; e.phase++ {
		root := e.lowestUnmatchedRow()
		if root == none {
			return fmt.Errorf("phase %d: no unmatched row left: %w", e.phase, ErrInvariant)
		}
		if err := e.runPhase(root); err != nil {
			return err
		}
	}
	if root := e.lowestUnmatchedRow(); root != none {
		return fmt.Errorf("row %d unmatched after %d phases: %w", root, e.n, ErrInvariant)
	}

	return nil
}

func (e *engine[T]) lowestUnmatchedRow() int {
	for x, y := range e.rowMate {
		if y == none {
			return x
		}
	}

	return none
}

// runPhase grows an alternating tree from root until it finds an augmenting
// path. Every non-augmenting step adds one matched row, so n steps suffice.
func (e *engine[T]) runPhase(root int) error {
	e.t.reset(root)
	e.stats.Phases++
	e.opts.OnPhase(e.phase, root)
	if e.debug {
		e.opts.Logger.Debug("hungarian: phase start", "phase", e.phase, "root", root)
	}

	var (
		x, y int
		ok   bool
		err  error
	)
	for step := 0; step < e.n; step++ {
		if x, y, ok = e.findTight(); !ok {
			if x, y, err = e.updatePotentials(); err != nil {
				return err
			}
		}
		if e.colMate[y] == none {
			return e.augment(x, y)
		}
		e.grow(x, y)
	}

	return fmt.Errorf("phase %d: no augmenting path within %d steps: %w", e.phase, e.n, ErrInvariant)
}

// findTight returns the first tight (treed row, untreed column) pair,
// scanning rows in insertion order and columns ascending.
func (e *engine[T]) findTight() (int, int, bool) {
	for _, x := range e.t.rows {
		for _, y := range e.t.free {
			if e.ar.tight(e.slack(x, y)) {
				return x, y, true
			}
		}
	}

	return none, none, false
}

// updatePotentials lowers treed rows and raises treed columns by the minimum
// slack alpha over treed rows × untreed columns. The minimizing pair is tight
// afterwards and is returned without re-testing it.
func (e *engine[T]) updatePotentials() (int, int, error) {
	if len(e.t.free) == 0 {
		return none, none, fmt.Errorf("phase %d: potential update with no untreed column: %w", e.phase, ErrInvariant)
	}
	var (
		alpha  T
		bx, by = none, none
		s      T
	)
	for _, x := range e.t.rows {
		for _, y := range e.t.free {
			s = e.slack(x, y)
			if bx == none || e.ar.less(s, alpha) {
				alpha, bx, by = s, x, y
			}
		}
	}
	for _, x := range e.t.rows {
		e.u[x] = e.ar.sub(e.u[x], alpha)
	}
	for _, y := range e.t.cols {
		e.v[y] = e.ar.add(e.v[y], alpha)
	}

	e.stats.PotentialUpdates++
	e.opts.OnPotentialUpdate(e.phase, bx, by)
	if e.debug {
		e.opts.Logger.Debug("hungarian: potential update", "phase", e.phase, "alpha", alpha, "row", bx, "col", by)
	}

	return bx, by, nil
}

// grow adds matched column y (found from row x) and its mate to the tree.
func (e *engine[T]) grow(x, y int) {
	w := e.colMate[y]
	e.t.addCol(y, x)
	e.t.addRow(w, y)
	e.stats.TreeGrowths++
	e.opts.OnGrow(w, y)
}

// augment flips the alternating path root → x → y, where y is unmatched.
// Walking back: x takes y, then the column x held (rowParent[x]) goes to the
// row that discovered it, and so on until the root.
func (e *engine[T]) augment(x, y int) error {
	var (
		row, col = x, y
		prev     int
		length   int
	)
	for length < e.n {
		prev = e.t.rowParent[row]
		e.rowMate[row] = col
		e.colMate[col] = row
		length++
		if prev == none {
			break
		}
		col = prev
		row = e.t.colParent[prev]
	}
	if prev != none {
		return fmt.Errorf("phase %d: augmenting path longer than %d: %w", e.phase, e.n, ErrInvariant)
	}

	e.stats.Augmentations++
	e.opts.OnAugment(e.phase, length)
	if e.debug {
		e.opts.Logger.Debug("hungarian: augment", "phase", e.phase, "row", x, "col", y, "length", length)
	}

	return nil
}

// result snapshots the final state. Pairs are in row order.
func (e *engine[T]) result() *Result[T] {
	r := &Result[T]{
		Pairs:         make([]Pair, e.n),
		Match:         make([]int, e.n),
		Weights:       make([]T, e.n),
		RowPotentials: make([]T, e.n),
		ColPotentials: make([]T, e.n),
		Total:         e.ar.zero(),
		Stats:         e.stats,
	}
	copy(r.Match, e.rowMate)
	copy(r.RowPotentials, e.u)
	copy(r.ColPotentials, e.v)
	for i, j := range e.rowMate {
		r.Pairs[i] = Pair{Row: i, Col: j}
		r.Weights[i] = e.w[i][j]
		r.Total = e.ar.add(r.Total, e.w[i][j])
	}

	return r
}
