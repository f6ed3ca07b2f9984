package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/address"
)

func TestCellFormula(t *testing.T) {
	tests := []struct {
		cell    *Cell
		formula string
		ok      bool
	}{
		{nil, "", false},
		{&Cell{}, "", false},
		{&Cell{Value: 10}, "", false},
		{&Cell{Value: "text"}, "", false},
		{&Cell{Value: "=A1"}, "=A1", true},
		{&Cell{Value: "=10"}, "=10", true},
	}

	for _, tt := range tests {
		formula, ok := tt.cell.Formula()
		assert.Equal(t, tt.ok, ok, "%+v", tt.cell)
		assert.Equal(t, tt.formula, formula)
	}
}

func TestBuildGrid(t *testing.T) {
	g, err := BuildGrid(map[string]any{"A1": 1, "C2": "=A1", "$B$3": "x"})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 1, g.At(0, 0).Value)
	assert.Equal(t, "=A1", g.At(1, 2).Value)
	assert.Equal(t, "x", g.At(2, 1).Value)
	assert.Nil(t, g.At(0, 1))
	assert.Nil(t, g.At(5, 5))
	assert.Nil(t, g.At(-1, 0))
}

func TestBuildGridMalformed(t *testing.T) {
	_, err := BuildGrid(map[string]any{"1A": 1})
	assert.ErrorIs(t, err, address.ErrMalformedAddress)
}

func TestGridRaggedRows(t *testing.T) {
	g := Grid{
		{{Value: 1}},
		nil,
		{nil, nil, {Value: 2}},
	}
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Nil(t, g.At(0, 2))
	assert.Nil(t, g.At(1, 0))
	assert.Equal(t, 2, g.At(2, 2).Value)
}

func TestNodeKey(t *testing.T) {
	k := NodeKey{Sheet: "Sheet1", Addr: "B4"}
	assert.Equal(t, "Sheet1!B4", k.String())

	tests := []struct {
		a, b NodeKey
		want int
	}{
		{a: NodeKey{Sheet: "Sheet1", Addr: "A10"}, b: NodeKey{Sheet: "Sheet1", Addr: "A2"}, want: -1},
		{a: NodeKey{Sheet: "Sheet1", Addr: "B1"}, b: NodeKey{Sheet: "Data", Addr: "Z9"}, want: 1},
		{a: k, b: k, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%s vs %s", tt.a, tt.b)
	}
	assert.Equal(t, []string{"Sheet1!B4"}, KeyStrings([]NodeKey{k}))
}
