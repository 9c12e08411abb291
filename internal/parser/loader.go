package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/model"
)

// LoadWorkbook opens the workbook at path and loads the named sheet into
// a table.
func LoadWorkbook(path, sheet string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return LoadSheet(f, sheet)
}

// LoadSheet reads one sheet into a table: first row is the header, the
// rest are data rows. Short rows are padded with absent cells.
func LoadSheet(f *excelize.File, sheet string) (*model.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	return model.NewTable(rows[0], rows[1:]), nil
}
