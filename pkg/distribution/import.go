package distribution

import (
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
	"github.com/hadesxkore/bhss-distribution/pkg/distribution/parser"
)

// Result is a successfully imported sheet.
type Result struct {
	// Commodity is the sheet variant that was parsed.
	Commodity Commodity `json:"commodity"`
	// SheetName is the worksheet the rows came from.
	SheetName string `json:"sheetName"`
	// SourceFileName is the workbook file name, when known.
	SourceFileName string `json:"sourceFileName,omitempty"`
	// Sheets lists all worksheet names in the workbook, for tab switching.
	Sheets []string `json:"sheets"`
	// HeaderTotal is the parenthesized total from the sheet header, when
	// present.
	HeaderTotal *float64 `json:"headerTotal,omitempty"`
	// Rows are the extracted distribution rows in sheet order.
	Rows []models.Row `json:"rows"`
}

// Groups returns the result's rows grouped by municipality in
// first-appearance order.
func (r *Result) Groups() []models.MunicipalityGroup {
	return models.GroupByMunicipality(r.Rows)
}

// ParseFile opens a workbook from disk and parses one sheet. An empty
// sheetName selects the workbook's first sheet.
func ParseFile(path string, c Commodity, sheetName string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := ParseWorkbook(f, c, sheetName)
	if err != nil {
		return nil, err
	}
	res.SourceFileName = filepath.Base(path)
	return res, nil
}

// ParseReader parses one sheet of a workbook read from r, as received in
// a multipart upload. An empty sheetName selects the first sheet.
func ParseReader(r io.Reader, c Commodity, sheetName string) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseWorkbook(f, c, sheetName)
}

// ParseWorkbook parses one sheet of an already opened workbook. The
// import is all-or-nothing: any failure returns a *ParseError wrapping
// one of the sentinel errors and no rows.
func ParseWorkbook(f *excelize.File, c Commodity, sheetName string) (*Result, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newParseError(c, sheetName, ErrNoWorksheets)
	}
	if sheetName == "" {
		sheetName = sheets[0]
	} else if !containsSheet(sheets, sheetName) {
		return nil, newParseError(c, sheetName, ErrWorksheetNotFound)
	}

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, newParseError(c, sheetName, err)
	}

	sheet, err := parser.Parse(parser.GridFromStrings(raw), c.Template())
	if err != nil {
		return nil, newParseError(c, sheetName, err)
	}

	return &Result{
		Commodity:   c,
		SheetName:   sheetName,
		Sheets:      sheets,
		HeaderTotal: sheet.HeaderTotal,
		Rows:        sheet.Rows,
	}, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
