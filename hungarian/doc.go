// Package hungarian solves the maximum-weight assignment problem on square
// matrices with the Kuhn–Munkres (Hungarian) primal–dual method.
//
// What:
//
//   - Given an n×n weight matrix W, find a permutation σ maximizing
//     Σ W[i][σ(i)], together with dual potentials u, v that certify it.
//   - The certificate: u[i]+v[j] >= W[i][j] for every cell (feasibility) and
//     u[i]+v[σ(i)] == W[i][σ(i)] on matched cells (complementary slackness).
//     Verify checks both.
//
// How:
//
//   - Start with u[i] = max_j W[i][j], v[j] = 0 and an empty matching.
//   - Each phase roots an alternating tree at the lowest unmatched row and
//     scans treed rows × untreed columns for a tight edge (zero slack).
//   - With no tight edge, the minimum slack α is subtracted from every treed
//     row and added to every treed column; the minimizing edge becomes tight
//     and is used directly.
//   - A tight edge to a matched column grows the tree by that column and its
//     mate; a tight edge to a free column closes an augmenting path, which is
//     flipped. The matching grows by one edge per phase, so n phases finish.
//
// Numbers:
//
//   - Solve / SolveFloat64 use float64 with tolerance Epsilon·max|W|
//     (DefaultEpsilon = 1e-9; WithEpsilon(0) for exact equality).
//   - SolveInt64 and SolveDecimal are exact. int64 weights must leave
//     headroom for the duals (ErrOverflow otherwise).
//
// Errors:
//
//   - ErrShape umbrella (ErrNilMatrix, ErrEmpty, ErrNonSquare), ErrNonFinite,
//     ErrTooLarge, ErrOverflow, ErrOptionViolation are returned before any work.
//   - ErrInvariant reports an internal bookkeeping failure and indicates a bug.
//
// Concurrency:
//
//   - A solve is sequential and owns all of its state; independent solves may
//     run concurrently. SolveBatch does exactly that with a bounded worker pool.
//
// Complexity:
//
//   - Time O(n⁴) worst case (each of ≤ n² steps rescans ≤ n² edges), typically
//     far less; memory O(n²) for the weight copy plus O(n) for the tree.
//
// Minimization is not a mode: negate the weights (matrix.Negated) and negate
// the resulting Total.
package hungarian
