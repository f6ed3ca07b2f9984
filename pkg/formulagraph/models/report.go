package models

// GraphReport is the serializable form of a dependency graph.
type GraphReport struct {
	// Precedents maps each node to the nodes its formula reads from.
	Precedents map[string][]string `json:"precedents"`
	// Dependents maps each node to the nodes whose formulas read it.
	Dependents map[string][]string `json:"dependents"`
	// AllNodes lists formula cells and every cell a formula references.
	AllNodes []string `json:"all_nodes"`
	// FormulaNodes lists the formula cells.
	FormulaNodes []string `json:"formula_nodes"`
}

// Report is the JSON view of one analysis.
type Report struct {
	// Sheet is the sheet name formulas were keyed on.
	Sheet string `json:"sheet"`
	// Layers lists node keys per layer.
	Layers [][]string `json:"layers"`
	// Frames lists span frames per layer.
	Frames []Frame `json:"frames"`
	// Cyclic lists layer indices produced by the cycle fallback.
	Cyclic []int `json:"cyclic_layers,omitempty"`
	// Graph is the dependency graph.
	Graph GraphReport `json:"graph"`
}
