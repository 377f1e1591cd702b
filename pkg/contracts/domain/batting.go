package domain

import (
	"math"
)

// MinSeason is the earliest season kept in the master table. Exports from
// earlier seasons use a different column layout and are dropped during
// normalization.
const MinSeason = 2021

// QualifyingPA is the minimum plate appearances a (player, month) row needs
// to participate in the FWOBA rescaling statistics. Small samples distort
// the empirical mean and spread.
const QualifyingPA = 20

// Rescaling targets: FWOBA is mapped onto this mean/spread so that it reads
// like a familiar wOBA value (~0.200-0.400).
const (
	FWOBATargetMean   = 0.320
	FWOBATargetStdDev = 0.045
)

// Undefined is the marker for a rate statistic whose denominator was zero or
// missing. It is NaN so that arithmetic with an undefined operand stays
// undefined; boundaries (JSON, CSV, xlsx) translate it to null/empty.
func Undefined() float64 {
	return math.NaN()
}

// IsDefined reports whether a rate statistic carries a real value.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// MonthlyBatting is one (player, season, month) observation from a monthly
// export. Counting columns are always present and non-negative after
// normalization; rate columns use Undefined() when their denominator was
// zero or the source never supplied them.
type MonthlyBatting struct {
	Season     int    `json:"Season" validate:"min=2021"`
	Month      int    `json:"Month" validate:"min=1,max=12"`
	MonthLabel string `json:"MonthLabel"`
	Name       string `json:"Name" validate:"required"`
	Team       string `json:"Team"`

	PA       int `json:"PA" validate:"min=0"`
	AB       int `json:"AB" validate:"min=0"`
	H        int `json:"H" validate:"min=0"`
	Singles  int `json:"1B" validate:"min=0"`
	Doubles  int `json:"2B" validate:"min=0"`
	Triples  int `json:"3B" validate:"min=0"`
	HomeRuns int `json:"HR" validate:"min=0"`
	BB       int `json:"BB" validate:"min=0"`
	IBB      int `json:"IBB" validate:"min=0"`
	HBP      int `json:"HBP" validate:"min=0"`
	SF       int `json:"SF" validate:"min=0"`
	R        int `json:"R" validate:"min=0"`
	RBI      int `json:"RBI" validate:"min=0"`
	SB       int `json:"SB" validate:"min=0"`
	K        int `json:"K" validate:"min=0"`

	OPS      float64 `json:"OPS"`
	WOBA     float64 `json:"wOBA"`
	XWOBA    float64 `json:"xwOBA"`
	WOBACon  float64 `json:"wOBAcon"`
	XWOBACon float64 `json:"xwOBAcon"`
	FWAR     float64 `json:"fWAR"`
	FWOBARaw float64 `json:"FWOBA_raw"`
	FWOBA    float64 `json:"FWOBA"`

	// Extra carries numeric source columns outside the canonical schema
	// (AVG, OBP, SLG and whatever else an export includes), coerced the
	// same way as everything else. Read-only after the pipeline completes.
	Extra map[string]float64 `json:"-"`
}

// Qualified reports whether the row participates in the rescaling
// statistics.
func (b *MonthlyBatting) Qualified() bool {
	return b.PA >= QualifyingPA && IsDefined(b.FWOBARaw)
}

// Stat returns the value of a column by its canonical name, for metric
// selection by downstream consumers. Counting columns come back as floats.
// The second return is false for names this row knows nothing about.
func (b *MonthlyBatting) Stat(name string) (float64, bool) {
	switch name {
	case "PA":
		return float64(b.PA), true
	case "AB":
		return float64(b.AB), true
	case "H":
		return float64(b.H), true
	case "1B":
		return float64(b.Singles), true
	case "2B":
		return float64(b.Doubles), true
	case "3B":
		return float64(b.Triples), true
	case "HR":
		return float64(b.HomeRuns), true
	case "BB":
		return float64(b.BB), true
	case "IBB":
		return float64(b.IBB), true
	case "HBP":
		return float64(b.HBP), true
	case "SF":
		return float64(b.SF), true
	case "R":
		return float64(b.R), true
	case "RBI":
		return float64(b.RBI), true
	case "SB":
		return float64(b.SB), true
	case "K":
		return float64(b.K), true
	case "OPS":
		return b.OPS, true
	case "wOBA":
		return b.WOBA, true
	case "xwOBA":
		return b.XWOBA, true
	case "wOBAcon":
		return b.WOBACon, true
	case "xwOBAcon":
		return b.XWOBACon, true
	case "fWAR":
		return b.FWAR, true
	case "FWOBA_raw":
		return b.FWOBARaw, true
	case "FWOBA":
		return b.FWOBA, true
	}
	v, ok := b.Extra[name]
	return v, ok
}

// monthLabels maps the in-season months to their display abbreviation.
// Months outside April-September have no label and come back empty.
var monthLabels = map[int]string{
	4: "Apr",
	5: "May",
	6: "Jun",
	7: "Jul",
	8: "Aug",
	9: "Sep",
}

// LabelForMonth returns the display abbreviation for a month, or "" when the
// month falls outside the April-September convention.
func LabelForMonth(month int) string {
	return monthLabels[month]
}
