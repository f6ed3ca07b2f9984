package models

// Frame is the set of contiguous spans covering one layer's addresses.
// Horizontal and Vertical cover the same addresses grouped two ways.
type Frame struct {
	// Layer is the 0-based layer index.
	Layer int `json:"layer"`
	// Horizontal holds single-row spans such as "A1" or "A1:D1", rows ascending.
	Horizontal []string `json:"horizontal"`
	// Vertical holds single-column spans such as "A1" or "A1:A4", columns ascending.
	Vertical []string `json:"vertical"`
}
