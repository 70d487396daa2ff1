package hungarian

import "slices"

// none marks an absent parent or an unmatched row/column.
const none = -1

// tree is the alternating tree of one phase, stored as flat arrays indexed
// by row/column id. It is allocated once per solve and reset between phases.
//
//   - rowIn/colIn: membership flags.
//   - rowParent[x]: the column through which row x joined (none for the root).
//   - colParent[y]: the treed row that discovered column y.
//   - rows, cols: treed rows and columns in insertion order.
//   - free: untreed columns in ascending order.
type tree struct {
	rowIn     []bool
	colIn     []bool
	rowParent []int
	colParent []int
	rows      []int
	cols      []int
	free      []int
}

func newTree(n int) *tree {
	return &tree{
		rowIn:     make([]bool, n),
		colIn:     make([]bool, n),
		rowParent: make([]int, n),
		colParent: make([]int, n),
		rows:      make([]int, 0, n),
		cols:      make([]int, 0, n),
		free:      make([]int, 0, n),
	}
}

// reset clears the previous phase and plants root as the only treed row.
func (t *tree) reset(root int) {
	for _, x := range t.rows {
		t.rowIn[x] = false
		t.rowParent[x] = none
	}
	for _, y := range t.cols {
		t.colIn[y] = false
		t.colParent[y] = none
	}
	t.rows = t.rows[:0]
	t.cols = t.cols[:0]
	t.free = t.free[:0]
	for y := range t.colIn {
		t.free = append(t.free, y)
	}
	t.addRow(root, none)
}

func (t *tree) addRow(x, parentCol int) {
	t.rowIn[x] = true
	t.rowParent[x] = parentCol
	t.rows = append(t.rows, x)
}

// addCol moves y from free into the tree, keeping free ascending.
func (t *tree) addCol(y, parentRow int) {
	t.colIn[y] = true
	t.colParent[y] = parentRow
	t.cols = append(t.cols, y)
	if k := slices.Index(t.free, y); k >= 0 {
		t.free = slices.Delete(t.free, k, k+1)
	}
}
