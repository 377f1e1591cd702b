package batting

import (
	"trendlab/pkg/contracts/domain"
)

// wOBA linear weights. Stable modern-era weights rather than season-specific
// ones, which would need league constants per year.
const (
	wobaWeightUBB = 0.69
	wobaWeightHBP = 0.72
	wobaWeight1B  = 0.88
	wobaWeight2B  = 1.25
	wobaWeight3B  = 1.58
	wobaWeightHR  = 2.01
)

// Fantasy category weights for FWOBA_raw. Strikeouts count against.
const (
	fwobaWeightH   = 0.55
	fwobaWeightR   = 0.55
	fwobaWeight2B  = 0.25
	fwobaWeightHR  = 1.10
	fwobaWeightSB  = 0.35
	fwobaWeightBB  = 0.45
	fwobaWeightRBI = 0.55
	fwobaWeightK   = -0.35
)

// ratio divides with a guarded denominator: a zero denominator yields the
// undefined marker, never a fault and never a silent zero.
func ratio(num float64, denom float64) float64 {
	if denom <= 0 {
		return domain.Undefined()
	}
	return num / denom
}

// Derive computes the derived rate columns for every row. A column the
// source already supplied is authoritative and left untouched.
func Derive(rows []domain.MonthlyBatting, supplied ColumnSet) {
	for i := range rows {
		deriveRow(&rows[i], supplied)
	}
}

func deriveRow(b *domain.MonthlyBatting, supplied ColumnSet) {
	if !supplied.Has("OPS") {
		totalBases := float64(b.Singles + 2*b.Doubles + 3*b.Triples + 4*b.HomeRuns)
		slugging := ratio(totalBases, float64(b.AB))

		onBase := ratio(
			float64(b.H+b.BB+b.HBP),
			float64(b.AB+b.BB+b.HBP+b.SF),
		)

		// Undefined propagates: NaN + x stays NaN.
		b.OPS = onBase + slugging
	}

	if !supplied.Has("wOBA") {
		ubb := b.BB - b.IBB
		if ubb < 0 {
			ubb = 0
		}
		num := wobaWeightUBB*float64(ubb) +
			wobaWeightHBP*float64(b.HBP) +
			wobaWeight1B*float64(b.Singles) +
			wobaWeight2B*float64(b.Doubles) +
			wobaWeight3B*float64(b.Triples) +
			wobaWeightHR*float64(b.HomeRuns)
		b.WOBA = ratio(num, float64(b.AB+ubb+b.SF+b.HBP))
	}

	// fWAR is only ever copied from a supplied WAR column; no synthetic
	// value is invented when the source has neither.
	if !supplied.Has("fWAR") && supplied.Has("WAR") {
		b.FWAR = b.Extra["WAR"]
	}

	if !supplied.Has("FWOBA_raw") {
		sum := fwobaWeightH*float64(b.H) +
			fwobaWeightR*float64(b.R) +
			fwobaWeight2B*float64(b.Doubles) +
			fwobaWeightHR*float64(b.HomeRuns) +
			fwobaWeightSB*float64(b.SB) +
			fwobaWeightBB*float64(b.BB) +
			fwobaWeightRBI*float64(b.RBI) +
			fwobaWeightK*float64(b.K)
		b.FWOBARaw = ratio(sum, float64(b.PA))
	}
}
