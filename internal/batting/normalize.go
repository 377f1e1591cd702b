package batting

import (
	"strconv"
	"strings"

	"trendlab/pkg/contracts/domain"
)

// aliasRenames maps legacy source column names to their canonical names.
// Applied before any other normalization step.
var aliasRenames = map[string]string{
	"Tm": "Team",
	"SO": "K",
}

// requiredColumns are the counting columns every row must carry. Columns
// absent from the source default to zero for every row.
var requiredColumns = []string{
	"PA", "AB", "H", "1B", "2B", "3B", "HR",
	"BB", "IBB", "HBP", "SF",
	"R", "RBI", "SB", "K",
}

// passthroughColumns are rate columns the engine treats as authoritative
// when the source already supplies them.
var passthroughColumns = []string{
	"OPS", "wOBA", "xwOBA", "wOBAcon", "xwOBAcon", "WAR", "fWAR",
	"FWOBA_raw", "FWOBA",
}

// identityColumns keep their text value instead of being coerced numeric.
var identityColumns = map[string]bool{
	"Name": true,
	"Team": true,
}

// ColumnSet records which rate columns the source data already supplied.
// Supplied columns are left untouched by the metric engine.
type ColumnSet map[string]bool

// Has reports whether the source supplied the named column.
func (s ColumnSet) Has(col string) bool {
	return s[col]
}

// CoerceOrZero converts a source cell to a number, treating anything that
// fails numeric parsing (including the missing-value marker) as a
// zero-valued observation. This is the single coercion path for all
// non-identity cells so the behavior stays auditable.
func CoerceOrZero(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

// coerceCount converts a counting cell, clamping at zero. Counting columns
// are never negative after normalization.
func coerceCount(cell string) int {
	v := int(CoerceOrZero(cell))
	if v < 0 {
		return 0
	}
	return v
}

// coerceNullableInt converts a cell to an integer, reporting false when the
// cell does not parse. Season and month use this path so that a row with an
// unusable season can be dropped instead of silently becoming zero.
func coerceNullableInt(cell string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// Normalize renames legacy columns, guarantees the required counting
// columns, coerces every non-identity column to numeric, and drops rows
// whose season is missing or before domain.MinSeason. The returned
// ColumnSet names the rate columns the source supplied, which the metric
// engine then leaves untouched.
func Normalize(raw *RawTable) ([]domain.MonthlyBatting, ColumnSet) {
	columns := make([]string, len(raw.Columns))
	for i, col := range raw.Columns {
		if canonical, ok := aliasRenames[col]; ok {
			columns[i] = canonical
		} else {
			columns[i] = col
		}
	}

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}

	supplied := make(ColumnSet)
	for _, col := range passthroughColumns {
		if present[col] {
			supplied[col] = true
		}
	}

	canonicalSet := make(map[string]bool)
	for _, col := range requiredColumns {
		canonicalSet[col] = true
	}
	for _, col := range passthroughColumns {
		canonicalSet[col] = true
	}
	canonicalSet["Season"] = true
	canonicalSet["Month"] = true
	canonicalSet["Name"] = true
	canonicalSet["Team"] = true

	// Columns outside the canonical schema ride along as coerced numeric
	// extras (AVG, OBP, SLG, WAR, ...). Taken from the column union so a
	// batch missing the column still gets the zero-valued observation.
	var extraColumns []string
	for _, col := range columns {
		if canonicalSet[col] || identityColumns[col] {
			continue
		}
		extraColumns = append(extraColumns, col)
	}
	if present["WAR"] {
		extraColumns = append(extraColumns, "WAR")
	}

	rows := make([]domain.MonthlyBatting, 0, len(raw.Rows))
	for _, rawRow := range raw.Rows {
		// Re-key the row with canonical names; filename-derived Season
		// and Month are already authoritative here.
		cells := make(map[string]string, len(rawRow))
		for col, cell := range rawRow {
			if canonical, ok := aliasRenames[col]; ok {
				col = canonical
			}
			cells[col] = cell
		}

		season, ok := coerceNullableInt(cells["Season"])
		if !ok || season < domain.MinSeason {
			continue
		}
		month, ok := coerceNullableInt(cells["Month"])
		if !ok {
			month = 0
		}

		row := domain.MonthlyBatting{
			Season:     season,
			Month:      month,
			MonthLabel: domain.LabelForMonth(month),
			Name:       cells["Name"],
			Team:       cells["Team"],

			PA:       coerceCount(cells["PA"]),
			AB:       coerceCount(cells["AB"]),
			H:        coerceCount(cells["H"]),
			Singles:  coerceCount(cells["1B"]),
			Doubles:  coerceCount(cells["2B"]),
			Triples:  coerceCount(cells["3B"]),
			HomeRuns: coerceCount(cells["HR"]),
			BB:       coerceCount(cells["BB"]),
			IBB:      coerceCount(cells["IBB"]),
			HBP:      coerceCount(cells["HBP"]),
			SF:       coerceCount(cells["SF"]),
			R:        coerceCount(cells["R"]),
			RBI:      coerceCount(cells["RBI"]),
			SB:       coerceCount(cells["SB"]),
			K:        coerceCount(cells["K"]),

			OPS:      domain.Undefined(),
			WOBA:     domain.Undefined(),
			XWOBA:    domain.Undefined(),
			WOBACon:  domain.Undefined(),
			XWOBACon: domain.Undefined(),
			FWAR:     domain.Undefined(),
			FWOBARaw: domain.Undefined(),
			FWOBA:    domain.Undefined(),
		}

		if supplied.Has("OPS") {
			row.OPS = CoerceOrZero(cells["OPS"])
		}
		if supplied.Has("wOBA") {
			row.WOBA = CoerceOrZero(cells["wOBA"])
		}
		if supplied.Has("xwOBA") {
			row.XWOBA = CoerceOrZero(cells["xwOBA"])
		}
		if supplied.Has("wOBAcon") {
			row.WOBACon = CoerceOrZero(cells["wOBAcon"])
		}
		if supplied.Has("xwOBAcon") {
			row.XWOBACon = CoerceOrZero(cells["xwOBAcon"])
		}
		if supplied.Has("fWAR") {
			row.FWAR = CoerceOrZero(cells["fWAR"])
		}
		if supplied.Has("FWOBA_raw") {
			row.FWOBARaw = CoerceOrZero(cells["FWOBA_raw"])
		}
		if supplied.Has("FWOBA") {
			row.FWOBA = CoerceOrZero(cells["FWOBA"])
		}

		if len(extraColumns) > 0 {
			row.Extra = make(map[string]float64, len(extraColumns))
			for _, col := range extraColumns {
				row.Extra[col] = CoerceOrZero(cells[col])
			}
		}

		rows = append(rows, row)
	}

	return rows, supplied
}
