package batting

import (
	"fmt"
	"sort"
	"strings"

	"trendlab/pkg/contracts/domain"
)

// Table is the immutable master table produced by one pipeline run. Filter
// methods return new views over the same row values and never mutate the
// receiver, so a Table can be shared freely once built.
type Table struct {
	rows     []domain.MonthlyBatting
	supplied ColumnSet
}

// NewTable builds a table from normalized, derived rows, sorted ascending
// by (Season, Month, Name).
func NewTable(rows []domain.MonthlyBatting, supplied ColumnSet) *Table {
	sorted := make([]domain.MonthlyBatting, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Name < b.Name
	})
	return &Table{rows: sorted, supplied: supplied}
}

// Rows returns the table rows in (Season, Month, Name) order. Callers must
// treat the slice as read-only.
func (t *Table) Rows() []domain.MonthlyBatting {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Supplied reports whether the named rate column came from the source data
// rather than the metric engine.
func (t *Table) Supplied(col string) bool {
	return t.supplied.Has(col)
}

func (t *Table) filter(keep func(*domain.MonthlyBatting) bool) *Table {
	out := make([]domain.MonthlyBatting, 0, len(t.rows))
	for i := range t.rows {
		if keep(&t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return &Table{rows: out, supplied: t.supplied}
}

// FilterSeason keeps rows of one season.
func (t *Table) FilterSeason(season int) *Table {
	return t.filter(func(b *domain.MonthlyBatting) bool {
		return b.Season == season
	})
}

// FilterMonths keeps rows whose month is in the given set. An empty set
// keeps nothing.
func (t *Table) FilterMonths(months ...int) *Table {
	set := make(map[int]bool, len(months))
	for _, m := range months {
		set[m] = true
	}
	return t.filter(func(b *domain.MonthlyBatting) bool {
		return set[b.Month]
	})
}

// FilterName keeps rows whose player name contains substr,
// case-insensitive. An empty substr keeps everything.
func (t *Table) FilterName(substr string) *Table {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return t
	}
	return t.filter(func(b *domain.MonthlyBatting) bool {
		return strings.Contains(strings.ToLower(b.Name), needle)
	})
}

// FilterMinPA keeps rows with at least min plate appearances.
func (t *Table) FilterMinPA(min int) *Table {
	return t.filter(func(b *domain.MonthlyBatting) bool {
		return b.PA >= min
	})
}

// Seasons returns the distinct seasons present, ascending.
func (t *Table) Seasons() []int {
	return t.distinctInts(func(b *domain.MonthlyBatting) int { return b.Season })
}

// MonthsFor returns the distinct months with data in a season, ascending.
func (t *Table) MonthsFor(season int) []int {
	return t.FilterSeason(season).distinctInts(func(b *domain.MonthlyBatting) int { return b.Month })
}

// Names returns the distinct player names present, sorted.
func (t *Table) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for i := range t.rows {
		name := t.rows[i].Name
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Table) distinctInts(key func(*domain.MonthlyBatting) int) []int {
	seen := make(map[int]bool)
	var out []int
	for i := range t.rows {
		v := key(&t.rows[i])
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// MonthAggregate is the PA-weighted average of one metric over a month.
type MonthAggregate struct {
	Month      int     `json:"Month"`
	MonthLabel string  `json:"MonthLabel"`
	Players    int     `json:"Players"`
	PA         int     `json:"PA"`
	Value      float64 `json:"Value"`
}

// GroupByMonth computes the PA-weighted average of a metric per month over
// the table's current rows. Rows with an undefined metric value or zero PA
// do not contribute; a month with no contributing rows has an undefined
// Value. Metrics are read from the already-computed columns, never
// re-derived.
func (t *Table) GroupByMonth(metric string) ([]MonthAggregate, error) {
	type acc struct {
		weighted float64
		pa       int
		players  int
	}
	byMonth := make(map[int]*acc)

	for i := range t.rows {
		b := &t.rows[i]
		v, ok := b.Stat(metric)
		if !ok {
			return nil, fmt.Errorf("unknown metric %q", metric)
		}

		a := byMonth[b.Month]
		if a == nil {
			a = &acc{}
			byMonth[b.Month] = a
		}
		a.players++
		if b.PA <= 0 || !domain.IsDefined(v) {
			continue
		}
		a.weighted += float64(b.PA) * v
		a.pa += b.PA
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	out := make([]MonthAggregate, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		value := domain.Undefined()
		if a.pa > 0 {
			value = a.weighted / float64(a.pa)
		}
		out = append(out, MonthAggregate{
			Month:      m,
			MonthLabel: domain.LabelForMonth(m),
			Players:    a.players,
			PA:         a.pa,
			Value:      value,
		})
	}
	return out, nil
}
