package http

import (
	"trendlab/internal/batting"
	"trendlab/pkg/contracts/domain"
)

// TableRow is the JSON shape of one (player, season, month) observation.
// Rate statistics are pointers so an undefined value serializes as null,
// never as NaN.
type TableRow struct {
	Season     int    `json:"Season"`
	Month      int    `json:"Month"`
	MonthLabel string `json:"MonthLabel"`
	Name       string `json:"Name"`
	Team       string `json:"Team"`

	PA       int `json:"PA"`
	AB       int `json:"AB"`
	H        int `json:"H"`
	Singles  int `json:"1B"`
	Doubles  int `json:"2B"`
	Triples  int `json:"3B"`
	HomeRuns int `json:"HR"`
	BB       int `json:"BB"`
	IBB      int `json:"IBB"`
	HBP      int `json:"HBP"`
	SF       int `json:"SF"`
	R        int `json:"R"`
	RBI      int `json:"RBI"`
	SB       int `json:"SB"`
	K        int `json:"K"`

	OPS      *float64 `json:"OPS"`
	WOBA     *float64 `json:"wOBA"`
	XWOBA    *float64 `json:"xwOBA,omitempty"`
	WOBACon  *float64 `json:"wOBAcon,omitempty"`
	XWOBACon *float64 `json:"xwOBAcon,omitempty"`
	FWAR     *float64 `json:"fWAR,omitempty"`
	FWOBARaw *float64 `json:"FWOBA_raw"`
	FWOBA    *float64 `json:"FWOBA"`
}

// TableResponse wraps the filtered rows.
type TableResponse struct {
	Count int        `json:"count"`
	Rows  []TableRow `json:"rows"`
}

// MonthValue is one month's weighted aggregate of a metric.
type MonthValue struct {
	Month      int      `json:"Month"`
	MonthLabel string   `json:"MonthLabel"`
	Players    int      `json:"Players"`
	PA         int      `json:"PA"`
	Value      *float64 `json:"Value"`
}

// MonthsResponse wraps the per-month aggregates for one metric.
type MonthsResponse struct {
	Metric string       `json:"metric"`
	Months []MonthValue `json:"months"`
}

// SeasonInfo lists the months with data in one season.
type SeasonInfo struct {
	Season int   `json:"season"`
	Months []int `json:"months"`
}

func nullable(v float64) *float64 {
	if !domain.IsDefined(v) {
		return nil
	}
	return &v
}

func newTableResponse(table *batting.Table) TableResponse {
	rows := table.Rows()
	out := make([]TableRow, 0, len(rows))
	for i := range rows {
		b := &rows[i]
		out = append(out, TableRow{
			Season:     b.Season,
			Month:      b.Month,
			MonthLabel: b.MonthLabel,
			Name:       b.Name,
			Team:       b.Team,
			PA:         b.PA,
			AB:         b.AB,
			H:          b.H,
			Singles:    b.Singles,
			Doubles:    b.Doubles,
			Triples:    b.Triples,
			HomeRuns:   b.HomeRuns,
			BB:         b.BB,
			IBB:        b.IBB,
			HBP:        b.HBP,
			SF:         b.SF,
			R:          b.R,
			RBI:        b.RBI,
			SB:         b.SB,
			K:          b.K,
			OPS:        nullable(b.OPS),
			WOBA:       nullable(b.WOBA),
			XWOBA:      nullable(b.XWOBA),
			WOBACon:    nullable(b.WOBACon),
			XWOBACon:   nullable(b.XWOBACon),
			FWAR:       nullable(b.FWAR),
			FWOBARaw:   nullable(b.FWOBARaw),
			FWOBA:      nullable(b.FWOBA),
		})
	}
	return TableResponse{Count: len(out), Rows: out}
}

func newMonthsResponse(metric string, aggs []batting.MonthAggregate) MonthsResponse {
	months := make([]MonthValue, 0, len(aggs))
	for _, a := range aggs {
		months = append(months, MonthValue{
			Month:      a.Month,
			MonthLabel: a.MonthLabel,
			Players:    a.Players,
			PA:         a.PA,
			Value:      nullable(a.Value),
		})
	}
	return MonthsResponse{Metric: metric, Months: months}
}
