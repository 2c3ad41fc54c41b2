package distribution

import (
	"errors"
	"fmt"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/parser"
)

// Sentinel errors for the import failure taxonomy. All four abort the
// import with no partial result; the caller is expected to clear any
// derived state rather than show stale data.
var (
	// ErrTemplateMismatch indicates the required header marker is absent.
	ErrTemplateMismatch = parser.ErrTemplateMismatch
	// ErrEmptyResult indicates the parse completed structurally but
	// produced zero rows.
	ErrEmptyResult = parser.ErrEmptyResult
	// ErrWorksheetNotFound indicates the requested sheet name is absent
	// from the workbook.
	ErrWorksheetNotFound = errors.New("worksheet not found")
	// ErrNoWorksheets indicates the workbook has no sheets at all.
	ErrNoWorksheets = errors.New("workbook has no worksheets")
)

// ParseError wraps an import failure with the commodity and sheet it
// occurred on.
type ParseError struct {
	Commodity Commodity
	Sheet     string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s sheet %q: %v", e.Commodity, e.Sheet, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(c Commodity, sheet string, err error) *ParseError {
	return &ParseError{Commodity: c, Sheet: sheet, Err: err}
}
