package batting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendlab/pkg/contracts/domain"
)

func testRow(season, month int, name string, pa int, fwoba float64) domain.MonthlyBatting {
	return domain.MonthlyBatting{
		Season:     season,
		Month:      month,
		MonthLabel: domain.LabelForMonth(month),
		Name:       name,
		PA:         pa,
		FWOBA:      fwoba,
	}
}

func testTable() *Table {
	return NewTable([]domain.MonthlyBatting{
		testRow(2022, 4, "Corey Seager", 80, 0.340),
		testRow(2021, 5, "Aaron Judge", 100, 0.380),
		testRow(2021, 4, "Aaron Judge", 90, 0.350),
		testRow(2021, 4, "Juan Soto", 95, 0.360),
		testRow(2021, 5, "Juan Soto", 0, domain.Undefined()),
	}, ColumnSet{})
}

func TestNewTableSortOrder(t *testing.T) {
	rows := testTable().Rows()
	require.Len(t, rows, 5)

	// Ascending by (Season, Month, Name).
	assert.Equal(t, "Aaron Judge", rows[0].Name)
	assert.Equal(t, 4, rows[0].Month)
	assert.Equal(t, "Juan Soto", rows[1].Name)
	assert.Equal(t, "Aaron Judge", rows[2].Name)
	assert.Equal(t, 5, rows[2].Month)
	assert.Equal(t, "Juan Soto", rows[3].Name)
	assert.Equal(t, 2022, rows[4].Season)
}

func TestTableFilters(t *testing.T) {
	tbl := testTable()

	assert.Equal(t, 4, tbl.FilterSeason(2021).Len())
	assert.Equal(t, 1, tbl.FilterSeason(2022).Len())
	assert.Equal(t, 0, tbl.FilterSeason(2023).Len())

	assert.Equal(t, 3, tbl.FilterMonths(4).Len())
	assert.Equal(t, 5, tbl.FilterMonths(4, 5).Len())
	assert.Equal(t, 0, tbl.FilterMonths().Len())

	assert.Equal(t, 2, tbl.FilterName("judge").Len())
	assert.Equal(t, 2, tbl.FilterName("SOTO").Len())
	assert.Equal(t, 5, tbl.FilterName("").Len())
	assert.Equal(t, 0, tbl.FilterName("trout").Len())

	assert.Equal(t, 4, tbl.FilterMinPA(80).Len())

	// Filters compose and never mutate the base table.
	assert.Equal(t, 1, tbl.FilterSeason(2021).FilterMonths(4).FilterName("soto").Len())
	assert.Equal(t, 5, tbl.Len())
}

func TestTableDistincts(t *testing.T) {
	tbl := testTable()
	assert.Equal(t, []int{2021, 2022}, tbl.Seasons())
	assert.Equal(t, []int{4, 5}, tbl.MonthsFor(2021))
	assert.Equal(t, []int{4}, tbl.MonthsFor(2022))
	assert.Equal(t, []string{"Aaron Judge", "Corey Seager", "Juan Soto"}, tbl.Names())
}

func TestGroupByMonthWeightedAverage(t *testing.T) {
	tbl := testTable().FilterSeason(2021)

	aggs, err := tbl.GroupByMonth("FWOBA")
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	april := aggs[0]
	assert.Equal(t, 4, april.Month)
	assert.Equal(t, "Apr", april.MonthLabel)
	assert.Equal(t, 2, april.Players)
	assert.Equal(t, 185, april.PA)
	assert.InDelta(t, (90*0.350+95*0.360)/185.0, april.Value, 1e-9)

	// Soto's May row has PA=0 and an undefined FWOBA; only Judge counts.
	may := aggs[1]
	assert.Equal(t, 2, may.Players)
	assert.Equal(t, 100, may.PA)
	assert.InDelta(t, 0.380, may.Value, 1e-9)
}

func TestGroupByMonthAllUndefined(t *testing.T) {
	tbl := NewTable([]domain.MonthlyBatting{
		{Season: 2021, Month: 5, Name: "A", PA: 0, FWOBA: domain.Undefined()},
	}, ColumnSet{})

	aggs, err := tbl.GroupByMonth("FWOBA")
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.False(t, domain.IsDefined(aggs[0].Value))
}

func TestGroupByMonthUnknownMetric(t *testing.T) {
	_, err := testTable().GroupByMonth("XBH")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XBH")
}

func TestGroupByMonthCountingMetric(t *testing.T) {
	tbl := NewTable([]domain.MonthlyBatting{
		{Season: 2021, Month: 4, Name: "A", PA: 10, HomeRuns: 2},
		{Season: 2021, Month: 4, Name: "B", PA: 30, HomeRuns: 6},
	}, ColumnSet{})

	aggs, err := tbl.GroupByMonth("HR")
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.InDelta(t, (10*2.0+30*6.0)/40.0, aggs[0].Value, 1e-9)
}
