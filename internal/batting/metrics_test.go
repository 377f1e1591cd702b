package batting

import (
	"math"
	"testing"

	"trendlab/pkg/contracts/domain"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDeriveOPS(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.MonthlyBatting
		expected float64
		defined  bool
	}{
		{
			name: "regular_month",
			// TB = 3 + 2*1 + 4*1 = 9, SLG = 0.9
			// OBP = (5+2+0)/(10+2+0+0) = 7/12
			row:      domain.MonthlyBatting{AB: 10, H: 5, Singles: 3, Doubles: 1, HomeRuns: 1, BB: 2},
			expected: 9.0/10.0 + 7.0/12.0,
			defined:  true,
		},
		{
			name: "zero_ab_undefined_not_zero",
			// Walk-only month: OBP is defined but SLG is not, and an
			// undefined operand makes OPS undefined.
			row:     domain.MonthlyBatting{AB: 0, BB: 4, PA: 4},
			defined: false,
		},
		{
			name:    "empty_row_undefined",
			row:     domain.MonthlyBatting{},
			defined: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deriveRow(&tt.row, ColumnSet{})
			if domain.IsDefined(tt.row.OPS) != tt.defined {
				t.Fatalf("OPS defined = %v, want %v (value %v)", domain.IsDefined(tt.row.OPS), tt.defined, tt.row.OPS)
			}
			if tt.defined && !almostEqual(tt.row.OPS, tt.expected, 1e-9) {
				t.Errorf("OPS = %v, want %v", tt.row.OPS, tt.expected)
			}
		})
	}
}

func TestDeriveWOBA(t *testing.T) {
	// AB=10, BB=2, IBB=0, HBP=0, SF=0, 1B=3, 2B=1, 3B=0, HR=1:
	// uBB = 2, denom = 12, num = 0.69*2 + 0.88*3 + 1.25*1 + 2.01*1 = 7.28
	row := domain.MonthlyBatting{
		AB: 10, BB: 2, H: 5,
		Singles: 3, Doubles: 1, HomeRuns: 1,
	}
	deriveRow(&row, ColumnSet{})

	if !almostEqual(row.WOBA, 7.28/12.0, 1e-9) {
		t.Errorf("wOBA = %v, want %v", row.WOBA, 7.28/12.0)
	}
	if !almostEqual(row.WOBA, 0.6067, 1e-4) {
		t.Errorf("wOBA = %v, want ~0.6067", row.WOBA)
	}
}

func TestDeriveWOBAEdgeCases(t *testing.T) {
	t.Run("zero_denominator_undefined", func(t *testing.T) {
		row := domain.MonthlyBatting{}
		deriveRow(&row, ColumnSet{})
		if domain.IsDefined(row.WOBA) {
			t.Errorf("wOBA = %v, want undefined", row.WOBA)
		}
	})

	t.Run("ibb_above_bb_floors_at_zero", func(t *testing.T) {
		// uBB must never be negative; denom = AB only.
		row := domain.MonthlyBatting{AB: 10, BB: 1, IBB: 3, Singles: 2}
		deriveRow(&row, ColumnSet{})
		want := (wobaWeight1B * 2) / 10.0
		if !almostEqual(row.WOBA, want, 1e-9) {
			t.Errorf("wOBA = %v, want %v", row.WOBA, want)
		}
	})
}

func TestDeriveFWOBARaw(t *testing.T) {
	// PA=20, H=5, R=3, 2B=1, HR=1, SB=1, BB=2, RBI=3, K=4:
	// sum = 2.75+1.65+0.25+1.10+0.35+0.90+1.65-1.40 = 7.25 -> 0.3625
	row := domain.MonthlyBatting{
		PA: 20, H: 5, R: 3, Doubles: 1, HomeRuns: 1,
		SB: 1, BB: 2, RBI: 3, K: 4,
	}
	deriveRow(&row, ColumnSet{})

	if !almostEqual(row.FWOBARaw, 0.3625, 1e-9) {
		t.Errorf("FWOBA_raw = %v, want 0.3625", row.FWOBARaw)
	}
}

func TestDeriveFWOBARawZeroPA(t *testing.T) {
	row := domain.MonthlyBatting{PA: 0, H: 3, R: 2}
	deriveRow(&row, ColumnSet{})
	if domain.IsDefined(row.FWOBARaw) {
		t.Errorf("FWOBA_raw = %v, want undefined on PA=0", row.FWOBARaw)
	}
}

func TestDeriveSuppliedColumnsAuthoritative(t *testing.T) {
	row := domain.MonthlyBatting{
		AB: 10, H: 5, Singles: 3, Doubles: 1, HomeRuns: 1, BB: 2, PA: 12,
		OPS:  0.850,
		WOBA: 0.400,
	}
	deriveRow(&row, ColumnSet{"OPS": true, "wOBA": true})

	if row.OPS != 0.850 {
		t.Errorf("supplied OPS overwritten: %v", row.OPS)
	}
	if row.WOBA != 0.400 {
		t.Errorf("supplied wOBA overwritten: %v", row.WOBA)
	}
	// FWOBA_raw is still derived.
	if !domain.IsDefined(row.FWOBARaw) {
		t.Error("FWOBA_raw not derived alongside supplied columns")
	}
}

func TestDeriveFWAR(t *testing.T) {
	t.Run("copied_from_war", func(t *testing.T) {
		row := domain.MonthlyBatting{
			FWAR:  domain.Undefined(),
			Extra: map[string]float64{"WAR": 1.7},
		}
		deriveRow(&row, ColumnSet{"WAR": true})
		if row.FWAR != 1.7 {
			t.Errorf("fWAR = %v, want 1.7", row.FWAR)
		}
	})

	t.Run("absent_without_war", func(t *testing.T) {
		row := domain.MonthlyBatting{FWAR: domain.Undefined()}
		deriveRow(&row, ColumnSet{})
		if domain.IsDefined(row.FWAR) {
			t.Errorf("fWAR = %v, want undefined when no WAR column exists", row.FWAR)
		}
	})
}
