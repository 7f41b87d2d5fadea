package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader parses back-fill workbooks. Only the first sheet is read; its
// first row must be the header.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("excel file %s has no sheets", path)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s of %s has no header row", sheet, path)
	}

	return recordsFromRows(rows), nil
}
