package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelLoader parses spreadsheet files, reading the first sheet at face
// value.
type ExcelLoader struct{}

// Extensions returns the file extensions this loader accepts.
func (l *ExcelLoader) Extensions() []string { return []string{".xlsx", ".xlsm"} }

// Load reads the first sheet of a workbook into raw rows.
func (l *ExcelLoader) Load(name string, data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", name)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
