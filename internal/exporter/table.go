package exporter

import (
	"sort"
	"strconv"

	"trendlab/internal/batting"
	"trendlab/pkg/contracts/domain"
)

// canonicalHeader is the fixed leading column order of every export.
// Extra source columns follow, sorted by name for reproducible output.
var canonicalHeader = []string{
	"Season", "Month", "MonthLabel", "Name", "Team",
	"PA", "AB", "H", "1B", "2B", "3B", "HR",
	"BB", "IBB", "HBP", "SF", "R", "RBI", "SB", "K",
	"OPS", "wOBA", "xwOBA", "wOBAcon", "xwOBAcon",
	"fWAR", "FWOBA_raw", "FWOBA",
}

// Header returns the export column order for a table.
func Header(table *batting.Table) []string {
	header := make([]string, len(canonicalHeader))
	copy(header, canonicalHeader)
	return append(header, extraColumns(table)...)
}

// Records renders every table row into export cells following Header's
// order. Undefined rates become empty cells.
func Records(table *batting.Table) [][]string {
	extras := extraColumns(table)
	rows := table.Rows()

	records := make([][]string, 0, len(rows))
	for i := range rows {
		b := &rows[i]
		record := []string{
			strconv.Itoa(b.Season),
			strconv.Itoa(b.Month),
			b.MonthLabel,
			b.Name,
			b.Team,
			strconv.Itoa(b.PA),
			strconv.Itoa(b.AB),
			strconv.Itoa(b.H),
			strconv.Itoa(b.Singles),
			strconv.Itoa(b.Doubles),
			strconv.Itoa(b.Triples),
			strconv.Itoa(b.HomeRuns),
			strconv.Itoa(b.BB),
			strconv.Itoa(b.IBB),
			strconv.Itoa(b.HBP),
			strconv.Itoa(b.SF),
			strconv.Itoa(b.R),
			strconv.Itoa(b.RBI),
			strconv.Itoa(b.SB),
			strconv.Itoa(b.K),
			formatRate(b.OPS),
			formatRate(b.WOBA),
			formatRate(b.XWOBA),
			formatRate(b.WOBACon),
			formatRate(b.XWOBACon),
			formatRate(b.FWAR),
			formatRate(b.FWOBARaw),
			formatRate(b.FWOBA),
		}
		for _, col := range extras {
			record = append(record, formatRate(b.Extra[col]))
		}
		records = append(records, record)
	}
	return records
}

func extraColumns(table *batting.Table) []string {
	rows := table.Rows()
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0].Extra))
	for col := range rows[0].Extra {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func formatRate(v float64) string {
	if !domain.IsDefined(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
