package batting

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"trendlab/internal/files"
)

// RawTable is the concatenation of every ingested monthly export, before
// normalization. Rows keep their source cells verbatim as text; a key absent
// from a row's map is the missing-value marker for columns that only some
// batches carry.
type RawTable struct {
	// Columns is the union of all source headers in first-seen order,
	// always including Season and Month.
	Columns []string
	Rows    []map[string]string
}

func (t *RawTable) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t *RawTable) addColumn(name string) {
	if !t.hasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Ingest reads every source file into one RawTable. Season and Month are
// overwritten from the filename-decoded values, taking precedence over any
// same-named column inside the file. Any file that fails to parse as CSV
// aborts the ingest.
func Ingest(sources []files.SourceFile, logger *slog.Logger) (*RawTable, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table := &RawTable{}
	table.addColumn("Season")
	table.addColumn("Month")

	for _, src := range sources {
		header, records, err := readCSV(src.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", src.Path, err)
		}

		for _, col := range header {
			table.addColumn(col)
		}

		season := strconv.Itoa(src.Year)
		month := strconv.Itoa(src.Month)
		for _, record := range records {
			row := make(map[string]string, len(header)+2)
			for i, col := range header {
				if i < len(record) {
					row[col] = record[i]
				}
			}
			row["Season"] = season
			row["Month"] = month
			table.Rows = append(table.Rows, row)
		}

		logger.Info("ingested monthly export",
			slog.String("file", src.Name),
			slog.Int("season", src.Year),
			slog.Int("month", src.Month),
			slog.Int("rows", len(records)))
	}

	return table, nil
}

// readCSV reads a delimited file with a header row. Every record must have
// the header's field count; ragged or otherwise malformed content surfaces
// as a parse error.
func readCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("missing header row")
	}

	return all[0], all[1:], nil
}
