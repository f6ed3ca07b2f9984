package formulagraph

import (
	"fmt"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/frames"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/graph"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/layers"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/output"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/parser"
)

// Result is the outcome of analyzing one grid.
type Result struct {
	// Layers holds node keys per layer, each sorted.
	Layers [][]models.NodeKey
	// Frames holds one frame per layer, in layer order.
	Frames []models.Frame
	// Graph is the dependency graph the layers were built from.
	Graph *graph.Graph
	// Cyclic lists indices of layers taken by the cycle fallback.
	Cyclic []int
}

// Report returns the JSON view of the result.
func (r *Result) Report() *models.Report {
	rep := &models.Report{
		Sheet:  r.Graph.Sheet(),
		Layers: make([][]string, len(r.Layers)),
		Frames: r.Frames,
		Cyclic: r.Cyclic,
		Graph:  r.Graph.Report(),
	}
	for i, l := range r.Layers {
		rep.Layers[i] = models.KeyStrings(l)
	}
	return rep
}

// CSVExport holds the two CSV bodies of a result.
type CSVExport struct {
	Layers string
	Frames string
}

// ExportCSV renders the layers and frames of a result as CSV.
func ExportCSV(r *Result) (CSVExport, error) {
	l, err := output.LayersCSV(r.Layers)
	if err != nil {
		return CSVExport{}, err
	}
	f, err := output.FramesCSV(r.Frames)
	if err != nil {
		return CSVExport{}, err
	}
	return CSVExport{Layers: l, Frames: f}, nil
}

// Analyze builds the dependency graph of grid, layers it and computes the
// frames of every layer. The grid is not modified.
func Analyze(grid models.Grid, opts Options) (*Result, error) {
	log := opts.Log()
	sheet := opts.SheetName()

	g, err := graph.Build(grid, graph.Options{Sheet: sheet, Scan: opts.ScanFunc()})
	if err != nil {
		return nil, NewAnalysisError(sheet, StageGraph, err)
	}
	log.Debug("dependency graph built",
		"sheet", sheet,
		"nodes", g.Len(),
		"formulas", len(g.FormulaNodes()),
		"edges", g.EdgeCount())

	lr := layers.Build(g)
	for _, i := range lr.Cyclic {
		log.Warn("cyclic dependencies, layer taken by minimum in-degree",
			"sheet", sheet,
			"layer", i,
			"nodes", len(lr.Layers[i]))
	}

	fr, err := frames.ForLayers(lr)
	if err != nil {
		return nil, NewAnalysisError(sheet, StageFrames, err)
	}
	log.Debug("layers built", "sheet", sheet, "layers", len(lr.Layers))

	return &Result{
		Layers: lr.Layers,
		Frames: fr,
		Graph:  g,
		Cyclic: lr.Cyclic,
	}, nil
}

// AnalyzeFile analyzes one worksheet of an xlsx file. opts.Sheet selects
// the worksheet; if empty the first sheet is used. Node keys carry the
// worksheet's name.
func AnalyzeFile(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheetName := opts.Sheet
	if sheetName == "" && len(sheetList) > 0 {
		sheetName = sheetList[0]
	}
	if !slices.Contains(sheetList, sheetName) {
		return nil, NewAnalysisError(sheetName, StageLoad, ErrSheetNotFound)
	}

	grid, err := parser.LoadGrid(f, sheetName)
	if err != nil {
		return nil, NewAnalysisError(sheetName, StageLoad, err)
	}
	opts.Log().Debug("grid loaded",
		"path", path,
		"sheet", sheetName,
		"rows", grid.Rows(),
		"cols", grid.Cols())

	opts.Sheet = sheetName
	return Analyze(grid, opts)
}
