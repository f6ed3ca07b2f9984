// Package parser extracts cell references from formulas and reads worksheet
// grids from xlsx files.
package parser

import (
	"iter"
	"regexp"
	"strings"

	"github.com/xuri/efp"
)

// referencePattern matches a cell or range reference, each corner with an
// optional sheet qualifier: Sheet!A1, 'My Sheet'!$A$1, A1:C3, S1!A1:S2!B2.
var referencePattern = regexp.MustCompile(
	`(?:(?:'(?P<qsheet>[^']+)'|(?P<sheet>[A-Za-z0-9_]+))!)?` +
		`(?P<start>\$?[A-Z]{1,3}\$?[0-9]+)` +
		`(?::(?:(?:'(?P<qendsheet>[^']+)'|(?P<endsheet>[A-Za-z0-9_]+))!)?` +
		`(?P<end>\$?[A-Z]{1,3}\$?[0-9]+))?`,
)

var (
	groupQSheet    = referencePattern.SubexpIndex("qsheet")
	groupSheet     = referencePattern.SubexpIndex("sheet")
	groupStart     = referencePattern.SubexpIndex("start")
	groupQEndSheet = referencePattern.SubexpIndex("qendsheet")
	groupEndSheet  = referencePattern.SubexpIndex("endsheet")
	groupEnd       = referencePattern.SubexpIndex("end")
)

// RangeEnd is the far corner of a range reference.
type RangeEnd struct {
	// Sheet is the corner's own sheet qualifier, empty when absent.
	Sheet string
	// Addr is the raw corner address, absolute markers included.
	Addr string
}

// Reference is one syntactic reference found in a formula. Sheets are left
// empty when the formula did not qualify them; callers apply their own
// default.
type Reference struct {
	// Sheet is the qualifier before the start corner, empty when absent.
	Sheet string
	// Start is the raw start address, absolute markers included.
	Start string
	// End is set for range references.
	End *RangeEnd
}

// IsRange reports whether the reference spans a range.
func (r Reference) IsRange() bool {
	return r.End != nil
}

// String renders the reference as it would appear in a formula (without
// quoting sheet names).
func (r Reference) String() string {
	var b strings.Builder
	if r.Sheet != "" {
		b.WriteString(r.Sheet)
		b.WriteByte('!')
	}
	b.WriteString(r.Start)
	if r.End != nil {
		b.WriteByte(':')
		if r.End.Sheet != "" {
			b.WriteString(r.End.Sheet)
			b.WriteByte('!')
		}
		b.WriteString(r.End.Addr)
	}
	return b.String()
}

// ScanFunc yields the references of a formula.
type ScanFunc func(formula string) iter.Seq[Reference]

// IsFormula reports whether s is formula text.
func IsFormula(s string) bool {
	return strings.HasPrefix(s, "=")
}

// Extract scans a formula left to right and yields every reference it
// contains, in order and without overlap. Duplicates are kept. Strings that
// are not formulas yield nothing.
//
// The scan is purely textual: text inside string literals and function names
// shaped like addresses (LOG10) are reported too. Use ExtractTokens to skip
// them.
func Extract(formula string) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		if !IsFormula(formula) {
			return
		}
		scan(formula, yield)
	}
}

// ExtractTokens tokenizes the formula with the Excel formula parser and scans
// only range operands, so string literals and function names are skipped.
func ExtractTokens(formula string) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		if !IsFormula(formula) {
			return
		}
		ps := efp.ExcelParser()
		for _, token := range ps.Parse(formula) {
			if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
				continue
			}
			if !scan(token.TValue, yield) {
				return
			}
		}
	}
}

// scan yields the references in text. It returns false when yield asked to
// stop.
func scan(text string, yield func(Reference) bool) bool {
	for pos := 0; pos < len(text); {
		loc := referencePattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return true
		}
		if !yield(referenceAt(text[pos:], loc)) {
			return false
		}
		pos += loc[1]
	}
	return true
}

func referenceAt(text string, loc []int) Reference {
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}

	ref := Reference{
		Sheet: firstNonEmpty(group(groupQSheet), group(groupSheet)),
		Start: group(groupStart),
	}
	if end := group(groupEnd); end != "" {
		ref.End = &RangeEnd{
			Sheet: firstNonEmpty(group(groupQEndSheet), group(groupEndSheet)),
			Addr:  end,
		}
	}
	return ref
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
