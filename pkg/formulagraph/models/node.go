package models

import "strings"

// DefaultSheet is the sheet name given to cells when the grid source does
// not name one.
const DefaultSheet = "Sheet1"

// NodeKey identifies a graph node: a cell address on a named sheet.
type NodeKey struct {
	Sheet string `json:"sheet"`
	Addr  string `json:"addr"`
}

// String renders the key as "{sheet}!{addr}".
func (k NodeKey) String() string {
	return k.Sheet + "!" + k.Addr
}

// Compare orders keys lexicographically by their rendered form, so
// "Sheet1!A10" sorts before "Sheet1!A2".
func (k NodeKey) Compare(other NodeKey) int {
	return strings.Compare(k.String(), other.String())
}

// KeyStrings renders a list of keys.
func KeyStrings(keys []NodeKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
