// Package frames compresses a layer's addresses into contiguous spans.
package frames

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/address"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/layers"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
)

// ForLayer returns the horizontal spans (grouped by row, runs of consecutive
// columns) and the vertical spans (grouped by column, runs of consecutive
// rows) covering addrs. Both lists cover the same addresses.
func ForLayer(addrs []string) (horizontal, vertical []string, err error) {
	byRow := treemap.NewWithIntComparator()
	byCol := treemap.NewWithIntComparator()
	for _, a := range addrs {
		c, err := address.ParseA1(a)
		if err != nil {
			return nil, nil, err
		}
		insert(byRow, c.Row, c.Col)
		insert(byCol, c.Col, c.Row)
	}

	horizontal = spans(byRow, func(row, col int) address.Coord {
		return address.Coord{Row: row, Col: col}
	})
	vertical = spans(byCol, func(col, row int) address.Coord {
		return address.Coord{Row: row, Col: col}
	})
	return horizontal, vertical, nil
}

// ForLayers computes the frame of every layer, tagged with its index.
func ForLayers(res layers.Result) ([]models.Frame, error) {
	out := make([]models.Frame, 0, len(res.Layers))
	for i := range res.Layers {
		h, v, err := ForLayer(res.Addresses(i))
		if err != nil {
			return nil, err
		}
		out = append(out, models.Frame{Layer: i, Horizontal: h, Vertical: v})
	}
	return out, nil
}

func insert(groups *treemap.Map, group, member int) {
	set, ok := groups.Get(group)
	if !ok {
		set = treeset.NewWithIntComparator()
		groups.Put(group, set)
	}
	set.(*treeset.Set).Add(member)
}

// spans walks groups in key order and merges each group's sorted members
// into maximal runs.
func spans(groups *treemap.Map, coord func(group, member int) address.Coord) []string {
	out := []string{}
	it := groups.Iterator()
	for it.Next() {
		group := it.Key().(int)
		members := it.Value().(*treeset.Set).Values()

		start := members[0].(int)
		prev := start
		flush := func() {
			out = append(out, address.FormatSpan(coord(group, start).String(), coord(group, prev).String()))
		}
		for _, m := range members[1:] {
			n := m.(int)
			if n != prev+1 {
				flush()
				start = n
			}
			prev = n
		}
		flush()
	}
	return out
}
