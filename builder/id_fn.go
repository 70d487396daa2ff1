// Package builder provides the row/column label schemes of generated instances.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a label from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var (
		buf  []byte
		i, j int
	)
	for i = idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for i, j = 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// PrefixIDFn returns prefix + decimal index, e.g. "w0", "w1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// labels materializes n labels with fn.
func labels(fn IDFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
