package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"timecard/storage"
)

// ImportStats summarizes one import run across all input files.
type ImportStats struct {
	FilesProcessed int
	RowsRead       int
	RowsMapped     int
	RowsSkipped    int
	RowsPersisted  int
}

// ImportFiles reads every input file, maps its rows, and persists the mapped
// entries. An empty format is inferred per file from its extension.
func ImportFiles(store *storage.SQLiteStore, paths []string, format string) (ImportStats, error) {
	var stats ImportStats

	for _, path := range paths {
		fileFormat := format
		if strings.TrimSpace(fileFormat) == "" {
			fileFormat = detectFormat(path)
		}

		reader, err := ReaderForFormat(fileFormat)
		if err != nil {
			return stats, fmt.Errorf("%s: %w", path, err)
		}

		records, err := reader.Read(path)
		if err != nil {
			return stats, err
		}

		result := MapRecords(records)
		persisted, err := store.InsertEntries(result.Entries)
		if err != nil {
			return stats, fmt.Errorf("persist entries from %s: %w", path, err)
		}

		stats.FilesProcessed++
		stats.RowsRead += len(records)
		stats.RowsMapped += len(result.Entries)
		stats.RowsSkipped += len(result.Skipped)
		stats.RowsPersisted += persisted
	}

	return stats, nil
}

func detectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}
