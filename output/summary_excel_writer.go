package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"timecard/timesheet"
)

func writeSummaryExcel(path string, summary timesheet.Summary) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for rowIndex, row := range SummaryGridRows(summary) {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIndex+1)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
