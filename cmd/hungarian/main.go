// Command hungarian solves maximum-weight assignment problems.
//
//	hungarian solve -in weights.yaml [-mode int] [-eps 1e-9] [-table|-json]
//	hungarian gen -n 5 [-seed 7] [-min 0 -max 100] [-int] [-planted] [-labels]
//	hungarian serve [-config hungarian.toml]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hungarian/builder"
	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/internal/config"
	"github.com/katalvlaran/hungarian/internal/logging"
	"github.com/katalvlaran/hungarian/internal/matrixio"
	"github.com/katalvlaran/hungarian/internal/metrics"
	"github.com/katalvlaran/hungarian/internal/runner"
	"github.com/katalvlaran/hungarian/internal/server"
)

const usage = `usage: hungarian <command> [flags]

commands:
  solve   solve a weight matrix file (YAML or JSON)
  gen     print a generated instance as YAML
  serve   run the HTTP API`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "hungarian:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return flag.ErrHelp
	}
	switch args[0] {
	case "solve":
		return solveCmd(ctx, args[1:], stdin, stdout, stderr)
	case "gen":
		return genCmd(args[1:], stdout, stderr)
	case "serve":
		return serveCmd(ctx, args[1:], stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		fmt.Fprintln(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func solveCmd(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "-", "weights file, - for stdin")
	mode := fs.String("mode", "float", "numeric mode when the file sets none: float|int|decimal")
	eps := fs.Float64("eps", hungarian.DefaultEpsilon, "float tightness tolerance (relative to max|W|), 0 for exact")
	maxSize := fs.Int("max", 0, "reject matrices larger than max×max, 0 for no limit")
	table := fs.Bool("table", false, "print a styled table")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	verbose := fs.Bool("v", false, "log solver phases to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	defMode, err := matrixio.ParseMode(*mode)
	if err != nil {
		return err
	}
	var inst matrixio.Instance
	if *in == "-" {
		inst, err = matrixio.Decode(stdin, defMode)
	} else {
		inst, err = matrixio.Load(*in, defMode)
	}
	if err != nil {
		return err
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Service: "hungarian", Level: level, Format: "text", Output: stderr})
	r := &runner.Runner{
		Options: []hungarian.Option{
			hungarian.WithEpsilon(*eps),
			hungarian.WithMaxSize(*maxSize),
			hungarian.WithLogger(logger.Logger),
		},
		Logger: logger.Logger,
	}
	rep, err := r.Run(ctx, inst)
	if err != nil {
		return err
	}

	switch {
	case *asJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case *table:
		fmt.Fprintln(stdout, rep.Table)
	default:
		fmt.Fprintln(stdout, rep.Grid)
		fmt.Fprintf(stdout, "\nTotal: %s\n", rep.Total)
	}
	if rep.Assignment != nil && !*asJSON {
		for _, p := range rep.Pairs {
			fmt.Fprintf(stdout, "%s -> %s\n", inst.RowLabels[p.Row], inst.ColLabels[p.Col])
		}
	}

	return nil
}

func genCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 4, "matrix order")
	seed := fs.Int64("seed", 1, "random seed")
	lo := fs.Float64("min", 0, "smallest weight")
	hi := fs.Float64("max", 100, "largest weight")
	asInt := fs.Bool("int", false, "integer weights in [min,max], written in int mode")
	planted := fs.Bool("planted", false, "plant a unique optimal permutation")
	withLabels := fs.Bool("labels", false, "add row/column labels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if math.IsNaN(*lo) || math.IsNaN(*hi) || math.IsInf(*lo, 0) || math.IsInf(*hi, 0) || *hi < *lo {
		return fmt.Errorf("gen: need finite -min <= -max, got %g, %g", *lo, *hi)
	}

	opts := []builder.BuilderOption{builder.WithSeed(*seed)}
	if *asInt {
		ilo, ihi := math.Ceil(*lo), math.Floor(*hi)
		if ilo > ihi {
			return fmt.Errorf("gen: no integer in [%g, %g]", *lo, *hi)
		}
		if ilo < -maxIntWeight || ihi > maxIntWeight {
			return fmt.Errorf("gen: -int bounds must lie within ±%g, got %g, %g", float64(maxIntWeight), *lo, *hi)
		}
		opts = append(opts, builder.WithIntegerWeight(int64(ilo), int64(ihi)))
	} else {
		opts = append(opts, builder.WithUniformWeight(*lo, *hi))
	}
	if *withLabels {
		opts = append(opts, builder.WithRowIDs(builder.PrefixIDFn("worker-")), builder.WithColIDs(builder.ExcelColumnIDFn))
	}

	var (
		b   *builder.Instance
		err error
	)
	if *planted {
		b, err = builder.Planted(*n, opts...)
	} else {
		b, err = builder.Random(*n, opts...)
	}
	if err != nil {
		return err
	}

	out := matrixio.Instance{Mode: matrixio.ModeFloat, Floats: b.Rows()}
	if *asInt {
		out = matrixio.Instance{Mode: matrixio.ModeInt, Ints: toInts(out.Floats)}
	}
	if *withLabels {
		out.RowLabels, out.ColLabels = b.RowIDs, b.ColIDs
	}

	return matrixio.Encode(stdout, out)
}

// maxIntWeight keeps -int weights exact as float64 and hi-lo+1 within int64.
const maxIntWeight = 1 << 53

func toInts(rows [][]float64) [][]int64 {
	out := make([][]int64, len(rows))
	for i, row := range rows {
		out[i] = make([]int64, len(row))
		for j, v := range row {
			out[i][j] = int64(math.Round(v))
		}
	}

	return out
}

func serveCmd(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "TOML config file (HUNGARIAN_* env vars override)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loader := config.NewLoader(*cfgPath, nil)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log)
	defer logger.Close()

	m := metrics.New()
	srv := server.New(cfg, m, logger.Logger)

	loader.SetLogger(logger.Logger)
	loader.OnReload(func(c *config.Config) {
		logger.SetLevel(c.Log.Level)
		srv.UpdateSolver(c.Solver)
	})
	loader.Watch()

	logger.Info("starting", "addr", cfg.Server.Addr, "max_size", cfg.Solver.MaxSize, "mode", cfg.Solver.DefaultMode)

	return srv.Start(ctx)
}
