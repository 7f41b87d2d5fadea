package importer

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader parses comma-separated back-fill files. The first row must be the
// header; data rows may be shorter than it.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	parser := csv.NewReader(file)
	parser.FieldsPerRecord = -1

	rows, err := parser.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	return recordsFromRows(rows), nil
}
