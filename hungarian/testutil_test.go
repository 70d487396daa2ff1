package hungarian_test

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"
)

// permutations calls fn with every permutation of 0..n-1 (Heap's algorithm).
func permutations(n int, fn func(p []int)) {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	var gen func(k int)
	gen = func(k int) {
		if k == 1 {
			fn(p)
			return
		}
		gen(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				p[i], p[k-1] = p[k-1], p[i]
			} else {
				p[0], p[k-1] = p[k-1], p[0]
			}
			gen(k - 1)
		}
	}
	gen(n)
}

// bruteFloat returns the maximum total over all permutations.
func bruteFloat(w [][]float64) float64 {
	best := math.Inf(-1)
	permutations(len(w), func(p []int) {
		var s float64
		for i, j := range p {
			s += w[i][j]
		}
		best = math.Max(best, s)
	})

	return best
}

func bruteInt(w [][]int64) int64 {
	var (
		best  int64
		first = true
	)
	permutations(len(w), func(p []int) {
		var s int64
		for i, j := range p {
			s += w[i][j]
		}
		if first || s > best {
			best, first = s, false
		}
	})

	return best
}

func bruteDecimal(w [][]decimal.Decimal) decimal.Decimal {
	var (
		best  decimal.Decimal
		first = true
	)
	permutations(len(w), func(p []int) {
		s := decimal.Zero
		for i, j := range p {
			s = s.Add(w[i][j])
		}
		if first || s.GreaterThan(best) {
			best, first = s, false
		}
	})

	return best
}

// randomFloat draws an n×n matrix with entries in [-scale, scale).
func randomFloat(rng *rand.Rand, n int, scale float64) [][]float64 {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			w[i][j] = (rng.Float64()*2 - 1) * scale
		}
	}

	return w
}

// randomInt draws an n×n matrix with entries in [lo, hi].
func randomInt(rng *rand.Rand, n int, lo, hi int64) [][]int64 {
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := range w[i] {
			w[i][j] = lo + rng.Int63n(hi-lo+1)
		}
	}

	return w
}

// randomDecimal draws cents in [-10000, 10000] as two-place decimals.
func randomDecimal(rng *rand.Rand, n int) [][]decimal.Decimal {
	w := make([][]decimal.Decimal, n)
	for i := range w {
		w[i] = make([]decimal.Decimal, n)
		for j := range w[i] {
			w[i][j] = decimal.New(rng.Int63n(20001)-10000, -2)
		}
	}

	return w
}
