// Package graph builds the cell dependency graph of a grid.
//
// An edge p -> d exists when the formula at d references p directly. The node
// set is every formula cell plus every cell some formula references; plain
// cells nobody reads are left out.
package graph

import (
	"fmt"
	"slices"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/address"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/parser"
)

// Options configures graph construction.
type Options struct {
	// Sheet names the grid's sheet and is the default for unqualified
	// references. Empty means models.DefaultSheet.
	Sheet string
	// Scan extracts references from formulas. Nil means parser.Extract.
	Scan parser.ScanFunc
}

// CellError reports a formula whose references could not be resolved.
type CellError struct {
	Cell models.NodeKey
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: %v", e.Cell, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

type nodeSet map[models.NodeKey]struct{}

func (s nodeSet) add(k models.NodeKey) {
	s[k] = struct{}{}
}

func (s nodeSet) has(k models.NodeKey) bool {
	_, ok := s[k]
	return ok
}

func (s nodeSet) sorted() []models.NodeKey {
	out := make([]models.NodeKey, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.SortFunc(out, models.NodeKey.Compare)
	return out
}

// Graph is an immutable dependency graph.
type Graph struct {
	sheet      string
	precedents map[models.NodeKey]nodeSet
	dependents map[models.NodeKey]nodeSet
	all        nodeSet
	formulas   nodeSet
	edges      int
}

// Sheet returns the sheet name formula cells were keyed on.
func (g *Graph) Sheet() string {
	return g.sheet
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.all)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Has reports whether k is a node.
func (g *Graph) Has(k models.NodeKey) bool {
	return g.all.has(k)
}

// IsFormula reports whether k is a formula node.
func (g *Graph) IsFormula(k models.NodeKey) bool {
	return g.formulas.has(k)
}

// Nodes returns every node, sorted.
func (g *Graph) Nodes() []models.NodeKey {
	return g.all.sorted()
}

// FormulaNodes returns the formula nodes, sorted.
func (g *Graph) FormulaNodes() []models.NodeKey {
	return g.formulas.sorted()
}

// Precedents returns the nodes k's formula reads from, sorted.
func (g *Graph) Precedents(k models.NodeKey) []models.NodeKey {
	return g.precedents[k].sorted()
}

// Dependents returns the nodes whose formulas read k, sorted.
func (g *Graph) Dependents(k models.NodeKey) []models.NodeKey {
	return g.dependents[k].sorted()
}

// Report returns the serializable form of the graph.
func (g *Graph) Report() models.GraphReport {
	r := models.GraphReport{
		Precedents:   make(map[string][]string, len(g.all)),
		Dependents:   make(map[string][]string, len(g.all)),
		AllNodes:     models.KeyStrings(g.Nodes()),
		FormulaNodes: models.KeyStrings(g.FormulaNodes()),
	}
	for k := range g.all {
		r.Precedents[k.String()] = models.KeyStrings(g.Precedents(k))
		r.Dependents[k.String()] = models.KeyStrings(g.Dependents(k))
	}
	return r
}

// builder accumulates edges during Build and is discarded afterwards.
type builder struct {
	sheet      string
	scan       parser.ScanFunc
	precedents map[models.NodeKey]nodeSet
	dependents map[models.NodeKey]nodeSet
	formulas   nodeSet
	sources    nodeSet
	edges      int
}

// Build walks the grid once and returns its dependency graph.
// A malformed address inside a formula, an oversized range, or a formula
// beyond column ZZZ fails the build with a *CellError wrapping
// address.ErrMalformedAddress.
func Build(grid models.Grid, opts Options) (*Graph, error) {
	b := &builder{
		sheet:      opts.Sheet,
		scan:       opts.Scan,
		precedents: make(map[models.NodeKey]nodeSet),
		dependents: make(map[models.NodeKey]nodeSet),
		formulas:   make(nodeSet),
		sources:    make(nodeSet),
	}
	if b.sheet == "" {
		b.sheet = models.DefaultSheet
	}
	if b.scan == nil {
		b.scan = parser.Extract
	}

	rows, cols := grid.Rows(), grid.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			formula, ok := grid.At(r, c).Formula()
			if !ok {
				continue
			}
			addr, err := address.FormatA1(r+1, c+1)
			if err != nil {
				// No A1 name exists past column ZZZ; report the R1C1 position.
				cell := models.NodeKey{Sheet: b.sheet, Addr: fmt.Sprintf("R%dC%d", r+1, c+1)}
				return nil, &CellError{Cell: cell, Err: err}
			}
			key := models.NodeKey{Sheet: b.sheet, Addr: addr}
			b.formulas.add(key)
			if err := b.addFormula(key, formula); err != nil {
				return nil, &CellError{Cell: key, Err: err}
			}
		}
	}

	return b.finish(), nil
}

func (b *builder) addFormula(cell models.NodeKey, formula string) error {
	for ref := range b.scan(formula) {
		sheet := ref.Sheet
		if sheet == "" {
			sheet = b.sheet
		}

		if !ref.IsRange() {
			if err := b.addEdge(models.NodeKey{Sheet: sheet, Addr: ref.Start}, cell); err != nil {
				return err
			}
			continue
		}

		endSheet := ref.End.Sheet
		if endSheet == "" {
			endSheet = b.sheet
		}
		if endSheet != sheet {
			// Corners on different sheets: only the start corner is taken.
			if err := b.addEdge(models.NodeKey{Sheet: sheet, Addr: ref.Start}, cell); err != nil {
				return err
			}
			continue
		}

		addrs, err := address.ExpandRange(ref.Start, ref.End.Addr)
		if err != nil {
			return err
		}
		for _, addr := range addrs {
			if err := b.addEdge(models.NodeKey{Sheet: sheet, Addr: addr}, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

// addEdge records from -> to after normalizing from's address.
func (b *builder) addEdge(from, to models.NodeKey) error {
	c, err := address.ParseA1(from.Addr)
	if err != nil {
		return err
	}
	from.Addr = c.String()

	if b.precedents[to] == nil {
		b.precedents[to] = make(nodeSet)
	}
	if b.precedents[to].has(from) {
		return nil
	}
	b.precedents[to].add(from)

	if b.dependents[from] == nil {
		b.dependents[from] = make(nodeSet)
	}
	b.dependents[from].add(to)
	b.sources.add(from)
	b.edges++
	return nil
}

func (b *builder) finish() *Graph {
	all := make(nodeSet, len(b.formulas)+len(b.sources))
	for k := range b.formulas {
		all.add(k)
	}
	for k := range b.sources {
		all.add(k)
	}

	g := &Graph{
		sheet:      b.sheet,
		precedents: make(map[models.NodeKey]nodeSet, len(all)),
		dependents: make(map[models.NodeKey]nodeSet, len(all)),
		all:        all,
		formulas:   b.formulas,
		edges:      b.edges,
	}
	for k := range all {
		g.precedents[k] = b.precedents[k]
		if g.precedents[k] == nil {
			g.precedents[k] = make(nodeSet)
		}
		g.dependents[k] = b.dependents[k]
		if g.dependents[k] == nil {
			g.dependents[k] = make(nodeSet)
		}
	}
	return g
}
