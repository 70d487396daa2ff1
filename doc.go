// Package hungarian is the root of a maximum-weight assignment toolkit built
// around the Kuhn–Munkres (Hungarian) primal-dual method.
//
// 🚀 What is in the box?
//
//	• hungarian/  the solver: float64 with a scaled tolerance, exact int64
//	  and exact decimal modes, certificates (potentials) and Verify,
//	  concurrent SolveBatch, labeled facade, phase hooks
//	• matrix/     dense float64 matrices, validators, Negated for
//	  minimization problems
//	• builder/    seeded instance generators (random, constant ties,
//	  planted optimum) with weight and label functions
//	• display/    text renderings of a result (plain grid, lipgloss table)
//
// Around the library:
//
//	cmd/hungarian       CLI: solve, gen, serve
//	internal/server     gin HTTP API with metrics and tracing
//	internal/config     TOML + env configuration with hot reload
//	internal/logging    slog setup (JSON/text, rotation, trace ids)
//	internal/metrics    Prometheus registry and solver counters
//	internal/matrixio   YAML/JSON matrix files per numeric mode
//	internal/runner     mode dispatch, verification and reports
//
// ✨ Quick start
//
//	res, err := hungarian.SolveFloat64([][]float64{{3, 1}, {2, 4}})
//	// res.Pairs = [{0 0} {1 1}], res.Total = 7
//	fmt.Println(display.Grid(res))
//
// For minimization pass matrix.Negated(costs) and negate the total.
package hungarian
