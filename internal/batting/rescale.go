package batting

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"trendlab/pkg/contracts/domain"
)

// Rescale maps FWOBA_raw onto a wOBA-like scale by empirical
// standardization. The mean and sample standard deviation come from the
// qualified subset (PA >= domain.QualifyingPA with a defined raw value) but
// are computed once over the entire corpus, all seasons and months together.
// Rescaling per season or per month would silently change every downstream
// value; the global scope is intentional.
//
// When the qualified subset is empty or has no variance, every row falls
// back to the constant target mean: without spread in the qualifying
// population there is no distribution to match.
func Rescale(rows []domain.MonthlyBatting, supplied ColumnSet) {
	if supplied.Has("FWOBA") {
		return
	}

	qualified := make([]float64, 0, len(rows))
	for i := range rows {
		if rows[i].Qualified() {
			qualified = append(qualified, rows[i].FWOBARaw)
		}
	}

	mean := stat.Mean(qualified, nil)
	std := stat.StdDev(qualified, nil)

	if len(qualified) == 0 || math.IsNaN(std) || std <= 0 {
		for i := range rows {
			rows[i].FWOBA = domain.FWOBATargetMean
		}
		return
	}

	for i := range rows {
		z := (rows[i].FWOBARaw - mean) / std
		rows[i].FWOBA = domain.FWOBATargetMean + z*domain.FWOBATargetStdDev
	}
}
