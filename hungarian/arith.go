package hungarian

import "github.com/shopspring/decimal"

// arith is the numeric surface the engine needs. One engine serves float64
// (tolerance-based tightness), int64 and decimal.Decimal (exact tightness).
type arith[T any] interface {
	zero() T
	add(a, b T) T
	sub(a, b T) T
	less(a, b T) bool
	// tight reports whether a non-negative slack counts as zero.
	tight(slack T) bool
	// sign is -1, 0 or +1 with the same tolerance as tight.
	sign(x T) int
}

// floatArith compares slack against an absolute tolerance computed once per
// solve as eps·max|W|. An all-zero matrix gets tol 0.
type floatArith struct{ tol float64 }

func (floatArith) zero() float64 { return 0 }
func (floatArith) add(a, b float64) float64 { return a + b }
func (floatArith) sub(a, b float64) float64 { return a - b }
func (floatArith) less(a, b float64) bool { return a < b }
func (f floatArith) tight(slack float64) bool { return slack <= f.tol }

func (f floatArith) sign(x float64) int {
	switch {
	case x > f.tol:
		return 1
	case x < -f.tol:
		return -1
	default:
		return 0
	}
}

func newFloatArith(eps, maxAbs float64) floatArith {
	return floatArith{tol: eps * maxAbs}
}

type int64Arith struct{}

func (int64Arith) zero() int64 { return 0 }
func (int64Arith) add(a, b int64) int64 { return a + b }
func (int64Arith) sub(a, b int64) int64 { return a - b }
func (int64Arith) less(a, b int64) bool { return a < b }
func (int64Arith) tight(slack int64) bool { return slack <= 0 }

func (int64Arith) sign(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

type decimalArith struct{}

func (decimalArith) zero() decimal.Decimal { return decimal.Zero }
func (decimalArith) add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (decimalArith) sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (decimalArith) less(a, b decimal.Decimal) bool { return a.LessThan(b) }
func (decimalArith) tight(slack decimal.Decimal) bool { return slack.Sign() <= 0 }
func (decimalArith) sign(x decimal.Decimal) int { return x.Sign() }
