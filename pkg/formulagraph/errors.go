package formulagraph

import (
	"errors"
	"fmt"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/address"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested worksheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMalformedAddress indicates a formula referenced an address that is not
// valid A1 notation.
var ErrMalformedAddress = address.ErrMalformedAddress

// Analysis stages reported by AnalysisError.
const (
	StageLoad   = "load"
	StageGraph  = "graph"
	StageFrames = "frames"
)

// AnalysisError represents an error during analysis of a sheet.
type AnalysisError struct {
	Sheet string
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(sheet, stage string, err error) *AnalysisError {
	return &AnalysisError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
