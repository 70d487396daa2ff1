package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/matrix"
	"github.com/shopspring/decimal"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two workers, two jobs; revenue of worker i on job j:
//	  [3 1]
//	  [2 4]
//	The diagonal earns 7, the anti-diagonal only 3.
//
// Complexity: O(n⁴) worst case, O(n²) memory.
func ExampleSolve() {
	w, err := matrix.NewFromRows([][]float64{
		{3, 1},
		{2, 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := hungarian.Solve(w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pairs:", res.Pairs)
	fmt.Println("total:", res.Total)
	fmt.Println("certified:", hungarian.Verify(w, res) == nil)

	// Output:
	// pairs: [{0 0} {1 1}]
	// total: 7
	// certified: true
}

// ExampleSolveInt64 shows the exact integer path and the dual certificate.
func ExampleSolveInt64() {
	res, err := hungarian.SolveInt64([][]int64{
		{1, 5},
		{6, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("match:", res.Match)
	fmt.Println("total:", res.Total)
	fmt.Println("u:", res.RowPotentials, "v:", res.ColPotentials)

	// Output:
	// match: [1 0]
	// total: 11
	// u: [5 6] v: [0 0]
}

// ExampleSolveDecimal avoids binary rounding entirely.
func ExampleSolveDecimal() {
	d := decimal.RequireFromString
	res, err := hungarian.SolveDecimal([][]decimal.Decimal{
		{d("10.10"), d("20.20")},
		{d("30.30"), d("0.01")},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", res.Total.StringFixed(2))

	// Output:
	// total: 50.50
}

// ExampleSolveLabeled maps names instead of indices. Minimization is done by
// negating the costs first.
func ExampleSolveLabeled() {
	costs := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	neg := make([][]float64, len(costs))
	for i, row := range costs {
		neg[i] = make([]float64, len(row))
		for j, c := range row {
			neg[i][j] = -c
		}
	}
	plan, res, err := hungarian.SolveLabeled(
		[]string{"ann", "bo", "cy"},
		[]string{"x", "y", "z"},
		neg,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ann:", plan["ann"], "bo:", plan["bo"], "cy:", plan["cy"])
	fmt.Println("cost:", -res.Total)

	// Output:
	// ann: y bo: x cy: z
	// cost: 5
}
