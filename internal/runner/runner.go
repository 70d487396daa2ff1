// Package runner turns a parsed matrixio.Instance into a verified Report:
// it dispatches on the numeric mode, checks the optimality certificate and
// renders every number as a string so all modes serialize alike.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/katalvlaran/hungarian/display"
	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/matrixio"
	"github.com/katalvlaran/hungarian/matrix"
	"github.com/shopspring/decimal"
)

// Observer receives one call per finished solve, failed ones included.
// Batch solves call it from worker goroutines, so it must be safe for
// concurrent use. *metrics.Metrics implements it.
type Observer interface {
	ObserveSolve(mode string, n int, d time.Duration, err error)
}

// Report is the serializable outcome of one solve.
type Report struct {
	Mode          string            `json:"mode"`
	N             int               `json:"n"`
	Pairs         []hungarian.Pair  `json:"pairs"`
	Assignment    map[string]string `json:"assignment,omitempty"`
	Weights       []string          `json:"weights"`
	RowPotentials []string          `json:"row_potentials"`
	ColPotentials []string          `json:"col_potentials"`
	Total         string            `json:"total"`
	Stats         hungarian.Stats   `json:"stats"`
	ElapsedMS     float64           `json:"elapsed_ms"`
	Grid          string            `json:"grid"`

	// Table is the lipgloss rendering; terminals only.
	Table string `json:"-"`
}

// Runner carries what every solve shares: base solver options, an optional
// Observer and a logger.
type Runner struct {
	Options  []hungarian.Option
	Observer Observer
	Logger   *slog.Logger
}

// Run is (&Runner{Options: opts}).Run(context.Background(), in).
func Run(in matrixio.Instance, opts ...hungarian.Option) (*Report, error) {
	return (&Runner{Options: opts}).Run(context.Background(), in)
}

// Run solves in, verifies the result and builds its Report. A per-instance
// epsilon overrides the runner's.
func (r *Runner) Run(ctx context.Context, in matrixio.Instance) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := append([]hungarian.Option(nil), r.Options...)
	if in.Epsilon != nil {
		opts = append(opts, hungarian.WithEpsilon(*in.Epsilon))
	}
	mode := in.Mode
	if mode == "" {
		mode = matrixio.ModeFloat
	}

	var rep *Report
	start := time.Now()
	err := in.CheckLabels()
	if err == nil {
		rep, err = dispatch(mode, in, opts)
	}
	elapsed := time.Since(start)
	if r.Observer != nil {
		r.Observer.ObserveSolve(string(mode), in.N(), elapsed, err)
	}
	if err != nil {
		logger.WarnContext(ctx, "solve failed", "mode", mode, "n", in.N(), "error", err)
		return nil, err
	}

	rep.ElapsedMS = float64(elapsed.Microseconds()) / 1000
	if in.RowLabels != nil && in.ColLabels != nil {
		rep.Assignment = make(map[string]string, rep.N)
		for _, p := range rep.Pairs {
			rep.Assignment[in.RowLabels[p.Row]] = in.ColLabels[p.Col]
		}
	}
	logger.InfoContext(ctx, "solved", "mode", mode, "n", rep.N, "total", rep.Total,
		"phases", rep.Stats.Phases, "elapsed", elapsed)

	return rep, nil
}

// RunBatch solves float instances concurrently (hungarian.SolveBatch with at
// most workers goroutines, 0 for GOMAXPROCS) and returns reports in input
// order. The first failing instance aborts the batch. Each solved instance
// is observed with its own engine time; a failed batch adds one failure.
// ElapsedMS on every report is the wall time of the whole batch.
func (r *Runner) RunBatch(ctx context.Context, ws [][][]float64, workers int) ([]*Report, error) {
	ms := make([]matrix.Matrix, len(ws))
	for k, w := range ws {
		d, err := matrix.NewFromRows(w)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", k, err)
		}
		ms[k] = d
	}

	opts := r.Options
	if r.Observer != nil {
		opts = append(append([]hungarian.Option(nil), r.Options...),
			hungarian.WithOnSolved(func(n int, d time.Duration) {
				r.Observer.ObserveSolve(string(matrixio.ModeFloat), n, d, nil)
			}))
	}

	start := time.Now()
	results, err := hungarian.SolveBatch(ctx, ms, workers, opts...)
	elapsed := time.Since(start)
	if err != nil {
		if r.Observer != nil {
			r.Observer.ObserveSolve(string(matrixio.ModeFloat), 0, elapsed, err)
		}
		return nil, err
	}

	reps := make([]*Report, len(results))
	for k, res := range results {
		if err = hungarian.Verify(ms[k], res, r.Options...); err != nil {
			return nil, fmt.Errorf("instance %d: %w: %w", k, hungarian.ErrInvariant, err)
		}
		reps[k] = build(matrixio.ModeFloat, res, matrixio.Instance{}, formatFloat)
		reps[k].ElapsedMS = float64(elapsed.Microseconds()) / 1000
	}

	return reps, nil
}

func dispatch(mode matrixio.Mode, in matrixio.Instance, opts []hungarian.Option) (*Report, error) {
	switch mode {
	case matrixio.ModeInt:
		res, err := hungarian.SolveInt64(in.Ints, opts...)
		if err != nil {
			return nil, err
		}
		if err = hungarian.VerifyInt64(in.Ints, res); err != nil {
			return nil, fmt.Errorf("%w: %w", hungarian.ErrInvariant, err)
		}
		return build(mode, res, in, formatInt), nil

	case matrixio.ModeDecimal:
		res, err := hungarian.SolveDecimal(in.Decimals, opts...)
		if err != nil {
			return nil, err
		}
		if err = hungarian.VerifyDecimal(in.Decimals, res); err != nil {
			return nil, fmt.Errorf("%w: %w", hungarian.ErrInvariant, err)
		}
		return build(mode, res, in, decimal.Decimal.String), nil

	case matrixio.ModeFloat:
		res, err := hungarian.SolveFloat64(in.Floats, opts...)
		if err != nil {
			return nil, err
		}
		w, err := matrix.NewFromRows(in.Floats)
		if err != nil {
			return nil, err
		}
		if err = hungarian.Verify(w, res, opts...); err != nil {
			return nil, fmt.Errorf("%w: %w", hungarian.ErrInvariant, err)
		}
		return build(mode, res, in, formatFloat), nil

	default:
		return nil, fmt.Errorf("%w: %q", matrixio.ErrMode, mode)
	}
}

func build[T any](mode matrixio.Mode, res *hungarian.Result[T], in matrixio.Instance, format func(T) string) *Report {
	return &Report{
		Mode:          string(mode),
		N:             res.N(),
		Pairs:         res.Pairs,
		Weights:       formatAll(res.Weights, format),
		RowPotentials: formatAll(res.RowPotentials, format),
		ColPotentials: formatAll(res.ColPotentials, format),
		Total:         format(res.Total),
		Stats:         res.Stats,
		Grid:          display.Grid(res),
		Table:         display.Table(res, in.RowLabels, in.ColLabels),
	}
}

func formatAll[T any](vs []T, format func(T) string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = format(v)
	}

	return out
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
