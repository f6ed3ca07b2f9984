// Package layers orders graph nodes into layers such that, for acyclic
// graphs, every node's precedents sit in an earlier layer.
package layers

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/graph"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
)

// Result is the layering of one graph.
type Result struct {
	// Layers holds node keys per layer, each layer sorted lexicographically.
	Layers [][]models.NodeKey
	// Cyclic lists the indices of layers taken by the cycle fallback.
	Cyclic []int
}

// Addresses returns the addresses of layer i without sheet names. Frames are
// computed from these.
func (r Result) Addresses(i int) []string {
	out := make([]string, len(r.Layers[i]))
	for j, k := range r.Layers[i] {
		out[j] = k.Addr
	}
	return out
}

func keyComparator(a, b interface{}) int {
	return a.(models.NodeKey).Compare(b.(models.NodeKey))
}

// peel holds the shrinking state of a layering run.
type peel struct {
	remaining *treeset.Set
	pending   map[models.NodeKey]map[models.NodeKey]struct{}
}

func newPeel(g *graph.Graph) *peel {
	p := &peel{
		remaining: treeset.NewWith(keyComparator),
		pending:   make(map[models.NodeKey]map[models.NodeKey]struct{}, g.Len()),
	}
	for _, k := range g.Nodes() {
		p.remaining.Add(k)
		preds := make(map[models.NodeKey]struct{})
		for _, pk := range g.Precedents(k) {
			preds[pk] = struct{}{}
		}
		p.pending[k] = preds
	}
	return p
}

// sources returns the remaining nodes with no remaining precedents, sorted.
func (p *peel) sources() []models.NodeKey {
	var out []models.NodeKey
	it := p.remaining.Iterator()
	for it.Next() {
		k := it.Value().(models.NodeKey)
		if len(p.pending[k]) == 0 {
			out = append(out, k)
		}
	}
	return out
}

// fallbackLayer is used when no node is free of precedents: it takes every
// remaining node whose remaining in-degree equals the minimum. Nodes inside
// a cycle may then share a layer with their precedents.
func (p *peel) fallbackLayer() []models.NodeKey {
	var out []models.NodeKey
	minDegree := -1
	it := p.remaining.Iterator()
	for it.Next() {
		k := it.Value().(models.NodeKey)
		switch d := len(p.pending[k]); {
		case minDegree < 0 || d < minDegree:
			minDegree = d
			out = append(out[:0], k)
		case d == minDegree:
			out = append(out, k)
		}
	}
	return out
}

func (p *peel) remove(layer []models.NodeKey) {
	for _, k := range layer {
		p.remaining.Remove(k)
		delete(p.pending, k)
	}
	for _, preds := range p.pending {
		for _, k := range layer {
			delete(preds, k)
		}
	}
}

// Build peels source layers off the graph until no node remains.
func Build(g *graph.Graph) Result {
	var res Result
	p := newPeel(g)
	for !p.remaining.Empty() {
		layer := p.sources()
		if len(layer) == 0 {
			layer = p.fallbackLayer()
			res.Cyclic = append(res.Cyclic, len(res.Layers))
		}
		p.remove(layer)
		res.Layers = append(res.Layers, layer)
	}
	return res
}
