// Package hungarian provides tunable options, error definitions and result
// types for maximum-weight assignment on square matrices.
package hungarian

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"
)

// Sentinel errors for input validation and solver execution.
var (
	// ErrShape is the umbrella for every shape violation. ErrNilMatrix,
	// ErrEmpty and ErrNonSquare all satisfy errors.Is(err, ErrShape).
	ErrShape = errors.New("hungarian: invalid matrix shape")

	// ErrNilMatrix is returned if a nil matrix is passed.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrShape)

	// ErrEmpty is returned for a 0×0 (or row-less) input.
	ErrEmpty = fmt.Errorf("%w: empty matrix", ErrShape)

	// ErrNonSquare is returned when the row count differs from a row's length.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrNonFinite is returned when an entry is NaN or ±Inf.
	ErrNonFinite = errors.New("hungarian: non-finite weight")

	// ErrTooLarge is returned when n exceeds the configured MaxSize.
	ErrTooLarge = errors.New("hungarian: matrix exceeds size limit")

	// ErrOverflow is returned when int64 weights are large enough that dual
	// potentials could overflow during the solve.
	ErrOverflow = errors.New("hungarian: weights too large for exact int64 arithmetic")

	// ErrLabels is returned by SolveLabeled for missing, duplicate or
	// mis-sized row/column labels.
	ErrLabels = errors.New("hungarian: invalid labels")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hungarian: invalid option supplied")

	// ErrInvariant signals an internal bookkeeping failure: a phase that does
	// not terminate within n steps, or a potential update with no free column.
	// It never results from valid input.
	ErrInvariant = errors.New("hungarian: internal invariant violated")
)

// Certificate errors returned by Verify and its typed variants.
var (
	// ErrNotPerfect means the matching is not a bijection rows ↔ columns.
	ErrNotPerfect = errors.New("hungarian: matching is not perfect")

	// ErrInfeasible means some u[i]+v[j] < W[i][j].
	ErrInfeasible = errors.New("hungarian: potentials are not dual feasible")

	// ErrNotTight means a matched edge is not tight, or the reported weights
	// and total disagree with the matrix.
	ErrNotTight = errors.New("hungarian: matched edge is not tight")
)

// DefaultEpsilon is the relative tightness tolerance for float64 weights.
// An edge is tight when its slack is at most Epsilon·max|W|, so the
// tolerance follows the scale of the weights at any magnitude.
const DefaultEpsilon = 1e-9

// Option configures the solver via functional arguments.
// If an Option is invalid (e.g. negative epsilon), it is recorded
// internally and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Epsilon is the relative tightness tolerance for float64 weights.
	// Zero selects exact equality. Ignored by the int64 and decimal solvers.
	Epsilon float64

	// MaxSize, if > 0, rejects inputs with more than MaxSize rows.
	MaxSize int

	// Logger receives Debug records for phases, potential updates and
	// augmentations. Defaults to a logger that discards everything.
	Logger *slog.Logger

	// OnPhase is called when a phase starts, with the 1-based phase number
	// and the root row of the new alternating tree.
	OnPhase func(phase, root int)

	// OnGrow is called when matched row `row` joins the tree through column `col`.
	OnGrow func(row, col int)

	// OnPotentialUpdate is called after each dual adjustment with the pair
	// (row, col) that became tight.
	OnPotentialUpdate func(phase, row, col int)

	// OnAugment is called after the matching grows, with the number of
	// matched edges on the flipped path.
	OnAugment func(phase, length int)

	// OnSolved is called once a solve succeeds, with the matrix order and
	// the time spent in the engine.
	OnSolved func(n int, elapsed time.Duration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Epsilon = DefaultEpsilon
//   - no size limit (MaxSize == 0)
//   - a discarding logger
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Epsilon:           DefaultEpsilon,
		MaxSize:           0,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnPhase:           func(int, int) {},
		OnGrow:            func(int, int) {},
		OnPotentialUpdate: func(int, int, int) {},
		OnAugment:         func(int, int) {},
		OnSolved:          func(int, time.Duration) {},
		err:               nil,
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WithEpsilon sets the float64 tightness tolerance.
//
//	eps > 0: relative tolerance
//	eps == 0: exact equality
//	eps < 0, NaN or Inf: invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxSize rejects inputs larger than n×n with ErrTooLarge.
//
//	n > 0: limit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSize = n
	}
}

// WithLogger routes solver Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPhase registers a callback to run at the start of every phase.
func WithOnPhase(fn func(phase, root int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithOnGrow registers a callback to run when the tree grows.
func WithOnGrow(fn func(row, col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGrow = fn
		}
	}
}

// WithOnPotentialUpdate registers a callback to run after each dual adjustment.
func WithOnPotentialUpdate(fn func(phase, row, col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPotentialUpdate = fn
		}
	}
}

// WithOnAugment registers a callback to run after each augmentation.
func WithOnAugment(fn func(phase, length int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnSolved registers a callback to run after each successful solve.
// Under SolveBatch it fires once per instance, from the worker goroutine.
func WithOnSolved(fn func(n int, elapsed time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolved = fn
		}
	}
}

// Pair is one matched (row, column) edge.
type Pair struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Stats counts the work done by one solve.
type Stats struct {
	Phases           int `json:"phases"`
	PotentialUpdates int `json:"potential_updates"`
	TreeGrowths      int `json:"tree_growths"`
	Augmentations    int `json:"augmentations"`
}

// Result holds the outcome of a solve:
//   - Pairs: one (row, column) pair per row, in row order.
//   - Match: Match[i] is the column assigned to row i.
//   - Weights: W[i][Match[i]] in row order.
//   - RowPotentials / ColPotentials: the final duals u and v.
//   - Total: the sum of Weights, equal to sum(u)+sum(v) at optimum.
type Result[T any] struct {
	Pairs         []Pair
	Match         []int
	Weights       []T
	RowPotentials []T
	ColPotentials []T
	Total         T
	Stats         Stats
}

// N returns the order of the solved matrix.
func (r *Result[T]) N() int { return len(r.Match) }

// Inverse returns the row assigned to each column.
func (r *Result[T]) Inverse() []int {
	inv := make([]int, len(r.Match))
	for i, j := range r.Match {
		inv[j] = i
	}

	return inv
}
