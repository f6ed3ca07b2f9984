// Package formulagraph builds the formula dependency graph of a worksheet,
// orders it into layers and summarizes each layer as contiguous frames.
package formulagraph

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/parser"
)

// ScanMode selects how references are found in formula text.
type ScanMode string

const (
	// ScanRegex scans the raw formula text for anything shaped like a
	// reference, including text inside string literals.
	ScanRegex ScanMode = "regex"
	// ScanTokens tokenizes the formula first and scans only range operands.
	ScanTokens ScanMode = "tokens"
)

// Options configures analysis behavior.
type Options struct {
	// Sheet names the sheet being analyzed. For Analyze it is the sheet name
	// used in node keys (default "Sheet1"); for AnalyzeFile it selects the
	// worksheet (default: the first sheet).
	Sheet string
	// Scan selects the reference scanner. Empty means ScanRegex.
	Scan ScanMode
	// Logger receives stage summaries. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Scan: ScanRegex,
	}
}

// SheetName returns the sheet name used in node keys.
func (o Options) SheetName() string {
	if o.Sheet != "" {
		return o.Sheet
	}
	return models.DefaultSheet
}

// ScanFunc returns the reference scanner for the configured mode.
func (o Options) ScanFunc() parser.ScanFunc {
	if o.Scan == ScanTokens {
		return parser.ExtractTokens
	}
	return parser.Extract
}

// Log returns the configured logger or one that discards everything.
func (o Options) Log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseScanMode converts a flag value to a ScanMode.
func ParseScanMode(s string) (ScanMode, error) {
	switch ScanMode(s) {
	case ScanRegex, ScanTokens:
		return ScanMode(s), nil
	}
	return "", fmt.Errorf("invalid scan mode: %s (must be regex or tokens)", s)
}
