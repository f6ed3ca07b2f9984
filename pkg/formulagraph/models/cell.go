// Package models defines data structures for formula dependency analysis.
package models

import "strings"

// Cell is a single grid cell as supplied by a grid source.
type Cell struct {
	// Value is the cell content. Formula cells hold a string starting with "=".
	Value any `json:"value"`
}

// Formula returns the formula text and true when the cell holds a formula.
func (c *Cell) Formula() (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c.Value.(string)
	if !ok || !strings.HasPrefix(s, "=") {
		return "", false
	}
	return s, true
}
