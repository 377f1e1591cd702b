package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendlab/internal/batting"
	"trendlab/pkg/contracts/domain"
)

func exportTable() *batting.Table {
	return batting.NewTable([]domain.MonthlyBatting{
		{
			Season: 2021, Month: 4, MonthLabel: "Apr",
			Name: "Aaron Judge", Team: "NYY",
			PA: 30, AB: 25, H: 8, Singles: 5, Doubles: 2, HomeRuns: 1,
			BB: 4, K: 7, R: 5, RBI: 6, SB: 1,
			OPS: 0.912, WOBA: 0.4, XWOBA: domain.Undefined(),
			WOBACon: domain.Undefined(), XWOBACon: domain.Undefined(),
			FWAR: domain.Undefined(), FWOBARaw: 0.3625, FWOBA: 0.32,
			Extra: map[string]float64{"AVG": 0.32, "OBP": 0.4},
		},
		{
			Season: 2021, Month: 5, MonthLabel: "May",
			Name: "Aaron Judge", Team: "NYY",
			OPS: domain.Undefined(), WOBA: domain.Undefined(),
			XWOBA: domain.Undefined(), WOBACon: domain.Undefined(),
			XWOBACon: domain.Undefined(), FWAR: domain.Undefined(),
			FWOBARaw: domain.Undefined(), FWOBA: 0.32,
			Extra: map[string]float64{"AVG": 0, "OBP": 0},
		},
	}, batting.ColumnSet{})
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "monthly.csv")
	require.NoError(t, NewCSVWriter(nil).WriteTable(path, exportTable()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// BOM prefix for spreadsheet tools.
	require.True(t, strings.HasPrefix(string(raw), "\xef\xbb\xbf"))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\xef\xbb\xbf")))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "Season", header[0])
	assert.Equal(t, "FWOBA", header[27])
	// Extra columns follow the canonical set, sorted by name.
	assert.Equal(t, []string{"AVG", "OBP"}, header[28:])

	april := records[1]
	assert.Equal(t, "2021", april[0])
	assert.Equal(t, "Apr", april[2])
	assert.Equal(t, "Aaron Judge", april[3])
	assert.Equal(t, "0.912", april[20])

	// Undefined rates export as empty cells.
	may := records[2]
	colOPS := 20
	assert.Equal(t, "", may[colOPS])
	assert.Equal(t, "0.32", may[27])
}

func TestHeaderStable(t *testing.T) {
	tbl := exportTable()
	assert.Equal(t, Header(tbl), Header(tbl))
	assert.Len(t, Header(tbl), 30)
}
