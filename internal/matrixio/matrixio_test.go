package matrixio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hungarian/internal/matrixio"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]matrixio.Mode{
		"":        matrixio.ModeFloat,
		"FLOAT":   matrixio.ModeFloat,
		" int ":   matrixio.ModeInt,
		"decimal": matrixio.ModeDecimal,
	} {
		got, err := matrixio.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := matrixio.ParseMode("complex")
	assert.ErrorIs(t, err, matrixio.ErrMode)
}

func TestFromCells(t *testing.T) {
	in, err := matrixio.FromCells(matrixio.ModeInt, [][]string{{"3", "1"}, {"2", " 4"}})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{3, 1}, {2, 4}}, in.Ints)
	assert.Equal(t, 2, in.N())

	in, err = matrixio.FromCells(matrixio.ModeDecimal, [][]string{{"0.1"}})
	require.NoError(t, err)
	assert.True(t, in.Decimals[0][0].Equal(decimal.RequireFromString("0.1")))

	in, err = matrixio.FromCells("", [][]string{{"1.5", "-2"}, {"0", "1e3"}})
	require.NoError(t, err)
	assert.Equal(t, matrixio.ModeFloat, in.Mode)
	assert.Equal(t, [][]float64{{1.5, -2}, {0, 1000}}, in.Floats)
}

func TestFromCellsErrors(t *testing.T) {
	_, err := matrixio.FromCells(matrixio.ModeFloat, nil)
	assert.ErrorIs(t, err, matrixio.ErrEmpty)

	_, err = matrixio.FromCells(matrixio.ModeFloat, [][]string{{"1", "2"}, {"3"}})
	assert.ErrorIs(t, err, matrixio.ErrRagged)

	_, err = matrixio.FromCells(matrixio.ModeInt, [][]string{{"1.5"}})
	require.ErrorIs(t, err, matrixio.ErrCell)
	assert.Contains(t, err.Error(), "row 0 col 0")

	_, err = matrixio.FromCells(matrixio.ModeFloat, [][]string{{"1", "NaN"}})
	assert.ErrorIs(t, err, matrixio.ErrCell)

	_, err = matrixio.FromCells(matrixio.ModeDecimal, [][]string{{"x"}})
	assert.ErrorIs(t, err, matrixio.ErrCell)
}

func TestCheckLabels(t *testing.T) {
	in, err := matrixio.FromCells(matrixio.ModeInt, [][]string{{"1", "2", "3"}, {"4", "5", "6"}})
	require.NoError(t, err)
	require.NoError(t, in.CheckLabels())

	in.RowLabels, in.ColLabels = []string{"a", "b"}, []string{"x", "y", "z"}
	require.NoError(t, in.CheckLabels())

	cases := []struct {
		name       string
		rows, cols []string
	}{
		{"short rows", []string{"a"}, nil},
		{"long cols", nil, []string{"x", "y", "z", "w"}},
		{"repeated row", []string{"a", "a"}, nil},
		{"empty col", nil, []string{"x", "", "z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in.RowLabels, in.ColLabels = tc.rows, tc.cols
			assert.ErrorIs(t, in.CheckLabels(), matrixio.ErrLabels)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
mode: decimal
rows: [alice, bob]
cols: [day, night]
weights:
  - [1.10, 5]
  - [6, 2.25]
`
	in, err := matrixio.Decode(strings.NewReader(doc), matrixio.ModeFloat)
	require.NoError(t, err)
	assert.Equal(t, matrixio.ModeDecimal, in.Mode)
	assert.Equal(t, "1.1", in.Decimals[0][0].String())
	assert.Equal(t, []string{"alice", "bob"}, in.RowLabels)
	assert.Equal(t, []string{"day", "night"}, in.ColLabels)
	assert.Nil(t, in.Epsilon)
}

func TestDecodeJSONAndDefaultMode(t *testing.T) {
	in, err := matrixio.Decode(strings.NewReader(`{"epsilon": 1e-6, "weights": [[3, 1], [2, 4]]}`), matrixio.ModeInt)
	require.NoError(t, err)
	assert.Equal(t, matrixio.ModeInt, in.Mode)
	assert.Equal(t, [][]int64{{3, 1}, {2, 4}}, in.Ints)
	require.NotNil(t, in.Epsilon)
	assert.InDelta(t, 1e-6, *in.Epsilon, 0)
}

func TestDecodeErrors(t *testing.T) {
	_, err := matrixio.Decode(strings.NewReader(""), matrixio.ModeFloat)
	assert.ErrorIs(t, err, matrixio.ErrEmpty)

	_, err = matrixio.Decode(strings.NewReader("weights: [[1, {a: 1}]]"), matrixio.ModeFloat)
	assert.ErrorIs(t, err, matrixio.ErrCell)

	_, err = matrixio.Decode(strings.NewReader("weights: [[1, 2], [3, 4]]\nrows: [a, a]"), matrixio.ModeFloat)
	assert.ErrorIs(t, err, matrixio.ErrLabels)

	_, err = matrixio.Decode(strings.NewReader("weights: [[1]]\ncols: [a, b]"), matrixio.ModeFloat)
	assert.ErrorIs(t, err, matrixio.ErrLabels)

	_, err = matrixio.Decode(strings.NewReader("mode: quaternion\nweights: [[1]]"), matrixio.ModeFloat)
	assert.ErrorIs(t, err, matrixio.ErrMode)

	_, err = matrixio.Decode(strings.NewReader("weights: [[1, 2], [3]]"), matrixio.ModeFloat)
	assert.ErrorIs(t, err, matrixio.ErrRagged)
}

func TestEncodeDecodeKeepsValues(t *testing.T) {
	cases := []matrixio.Instance{
		{Mode: matrixio.ModeInt, Ints: [][]int64{{3, -1}, {2, 4}}},
		{Mode: matrixio.ModeFloat, Floats: [][]float64{{0.5, 1e6}, {-2.25, 3}}},
		{
			Mode:      matrixio.ModeDecimal,
			Decimals:  [][]decimal.Decimal{{decimal.RequireFromString("0.10"), decimal.RequireFromString("7")}, {decimal.Zero, decimal.RequireFromString("-3.333")}},
			RowLabels: []string{"a", "b"},
			ColLabels: []string{"x", "y"},
		},
	}
	for _, in := range cases {
		t.Run(string(in.Mode), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, matrixio.Encode(&buf, in))
			assert.Contains(t, buf.String(), "mode: "+string(in.Mode))

			back, err := matrixio.Decode(&buf, matrixio.ModeFloat)
			require.NoError(t, err)
			assert.Equal(t, in.Mode, back.Mode)
			assert.Equal(t, in.Ints, back.Ints)
			assert.Equal(t, in.Floats, back.Floats)
			assert.Equal(t, in.RowLabels, back.RowLabels)
			require.Len(t, back.Decimals, len(in.Decimals))
			for i := range in.Decimals {
				for j := range in.Decimals[i] {
					assert.True(t, in.Decimals[i][j].Equal(back.Decimals[i][j]))
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights:\n  - [3, 1]\n  - [2, 4]\n"), 0o600))

	in, err := matrixio.Load(path, matrixio.ModeFloat)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {2, 4}}, in.Floats)

	_, err = matrixio.Load(filepath.Join(t.TempDir(), "missing.yaml"), matrixio.ModeFloat)
	assert.Error(t, err)
}
