// Package matrixio reads and writes weight matrices in the three numeric
// modes the solver supports. Files are YAML documents (JSON is accepted as
// the YAML subset it is):
//
//	mode: int          # float (default) | int | decimal
//	epsilon: 1e-9      # optional, float mode only
//	rows: [a, b]       # optional labels
//	cols: [x, y]
//	weights:
//	  - [3, 1]
//	  - [2, 4]
//
// Cells are parsed from their literal text, so decimal inputs keep every digit.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Mode selects the numeric type of a solve.
type Mode string

// Supported modes.
const (
	ModeFloat   Mode = "float"
	ModeInt     Mode = "int"
	ModeDecimal Mode = "decimal"
)

var (
	// ErrMode is returned for an unknown mode name.
	ErrMode = errors.New("matrixio: unknown mode")

	// ErrEmpty is returned when there are no rows.
	ErrEmpty = errors.New("matrixio: empty matrix")

	// ErrRagged is returned when rows differ in length.
	ErrRagged = errors.New("matrixio: ragged rows")

	// ErrCell is returned when a cell does not parse in the selected mode.
	ErrCell = errors.New("matrixio: invalid cell")

	// ErrLabels is returned when rows/cols labels do not match the matrix.
	ErrLabels = errors.New("matrixio: invalid labels")
)

// ParseMode accepts "float", "int", "decimal" in any case; "" is float.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeFloat, nil
	case ModeFloat, ModeInt, ModeDecimal:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrMode, s)
	}
}

// Instance is one parsed matrix. Exactly one of Floats, Ints, Decimals is set,
// matching Mode.
type Instance struct {
	Mode      Mode
	Epsilon   *float64
	RowLabels []string
	ColLabels []string

	Floats   [][]float64
	Ints     [][]int64
	Decimals [][]decimal.Decimal
}

// N returns the number of rows.
func (in Instance) N() int {
	switch in.Mode {
	case ModeInt:
		return len(in.Ints)
	case ModeDecimal:
		return len(in.Decimals)
	default:
		return len(in.Floats)
	}
}

// cols is the width of the first row, 0 for an empty instance.
func (in Instance) cols() int {
	switch in.Mode {
	case ModeInt:
		if len(in.Ints) > 0 {
			return len(in.Ints[0])
		}
	case ModeDecimal:
		if len(in.Decimals) > 0 {
			return len(in.Decimals[0])
		}
	default:
		if len(in.Floats) > 0 {
			return len(in.Floats[0])
		}
	}

	return 0
}

// CheckLabels reports ErrLabels unless each label set is nil or names every
// row (column) exactly once.
func (in Instance) CheckLabels() error {
	if err := checkLabels("rows", in.RowLabels, in.N()); err != nil {
		return err
	}

	return checkLabels("cols", in.ColLabels, in.cols())
}

// FromCells parses textual cells in the given mode. Rows must be non-empty and
// of equal length; squareness is left to the solver.
func FromCells(mode Mode, cells [][]string) (Instance, error) {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return Instance{}, err
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Instance{}, ErrEmpty
	}
	width := len(cells[0])
	for i, row := range cells {
		if len(row) != width {
			return Instance{}, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRagged, i, len(row), width)
		}
	}

	in := Instance{Mode: mode}
	switch mode {
	case ModeInt:
		in.Ints, err = parseRows(cells, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case ModeDecimal:
		in.Decimals, err = parseRows(cells, decimal.NewFromString)
	default:
		in.Floats, err = parseRows(cells, parseFinite)
	}
	if err != nil {
		return Instance{}, err
	}

	return in, nil
}

func parseRows[T any](cells [][]string, parse func(string) (T, error)) ([][]T, error) {
	out := make([][]T, len(cells))
	for i, row := range cells {
		out[i] = make([]T, len(row))
		for j, s := range row {
			v, err := parse(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d %q: %w", ErrCell, i, j, s, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// parseFinite rejects NaN and ±Inf up front so file errors point at the cell.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}

	return v, nil
}

type document struct {
	Mode    string        `yaml:"mode"`
	Epsilon *float64      `yaml:"epsilon,omitempty"`
	Rows    []string      `yaml:"rows,omitempty"`
	Cols    []string      `yaml:"cols,omitempty"`
	Weights [][]yaml.Node `yaml:"weights"`
}

// Decode reads one YAML or JSON document from r. defaultMode applies when the
// document has no mode.
func Decode(r io.Reader, defaultMode Mode) (Instance, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Instance{}, ErrEmpty
		}
		return Instance{}, fmt.Errorf("matrixio: decode: %w", err)
	}
	if doc.Mode == "" {
		doc.Mode = string(defaultMode)
	}

	cells := make([][]string, len(doc.Weights))
	for i, row := range doc.Weights {
		cells[i] = make([]string, len(row))
		for j := range row {
			if row[j].Kind != yaml.ScalarNode {
				return Instance{}, fmt.Errorf("%w: row %d col %d is not a scalar (line %d)", ErrCell, i, j, row[j].Line)
			}
			cells[i][j] = row[j].Value
		}
	}
	in, err := FromCells(Mode(doc.Mode), cells)
	if err != nil {
		return Instance{}, err
	}
	in.Epsilon = doc.Epsilon
	if err = checkLabels("rows", doc.Rows, len(cells)); err != nil {
		return Instance{}, err
	}
	if err = checkLabels("cols", doc.Cols, len(cells[0])); err != nil {
		return Instance{}, err
	}
	in.RowLabels, in.ColLabels = doc.Rows, doc.Cols

	return in, nil
}

// checkLabels accepts nil or exactly n unique non-empty labels.
func checkLabels(kind string, ls []string, n int) error {
	if ls == nil {
		return nil
	}
	if len(ls) != n {
		return fmt.Errorf("%w: %d %s labels for %d entries", ErrLabels, len(ls), kind, n)
	}
	seen := make(map[string]struct{}, n)
	for i, l := range ls {
		if l == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrLabels, kind, i)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w: %s[%d]=%q repeats", ErrLabels, kind, i, l)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// Load reads the document at path.
func Load(path string, defaultMode Mode) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	return Decode(f, defaultMode)
}

// Encode writes in as a YAML document that Decode reads back unchanged.
// Rows are written in flow style, one per line.
func Encode(w io.Writer, in Instance) error {
	var cells [][]string
	switch in.Mode {
	case ModeInt:
		cells = formatRows(in.Ints, func(v int64) string { return strconv.FormatInt(v, 10) })
	case ModeDecimal:
		cells = formatRows(in.Decimals, decimal.Decimal.String)
	case ModeFloat, "":
		cells = formatRows(in.Floats, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	default:
		return fmt.Errorf("%w: %q", ErrMode, in.Mode)
	}

	weights := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range cells {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, c := range row {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: c})
		}
		weights.Content = append(weights.Content, seq)
	}

	mode := in.Mode
	if mode == "" {
		mode = ModeFloat
	}
	out := struct {
		Mode    string     `yaml:"mode"`
		Epsilon *float64   `yaml:"epsilon,omitempty"`
		Rows    []string   `yaml:"rows,omitempty,flow"`
		Cols    []string   `yaml:"cols,omitempty,flow"`
		Weights *yaml.Node `yaml:"weights"`
	}{string(mode), in.Epsilon, in.RowLabels, in.ColLabels, weights}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return enc.Close()
}

func formatRows[T any](rows [][]T, format func(T) string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = format(v)
		}
	}

	return out
}
