package billing

import (
	"math"
	"testing"

	"github.com/naturenectar/billing-api/internal/domain/enum"
)

const epsilon = 0.01

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeLineExclusive(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		gstRate   float64
		want      Amounts
	}{
		{
			name:      "standard 18 percent",
			unitPrice: 100.00,
			quantity:  2,
			gstRate:   18,
			want:      Amounts{Base: 200.00, Tax: 36.00, CGST: 18.00, SGST: 18.00, Total: 236.00},
		},
		{
			name:      "single unit 5 percent",
			unitPrice: 150.00,
			quantity:  1,
			gstRate:   5,
			want:      Amounts{Base: 150.00, Tax: 7.50, CGST: 3.75, SGST: 3.75, Total: 157.50},
		},
		{
			name:      "zero rate",
			unitPrice: 80.00,
			quantity:  3,
			gstRate:   0,
			want:      Amounts{Base: 240.00, Tax: 0, CGST: 0, SGST: 0, Total: 240.00},
		},
		{
			name:      "fractional price",
			unitPrice: 33.33,
			quantity:  3,
			gstRate:   12,
			want:      Amounts{Base: 99.99, Tax: 12.00, CGST: 6.00, SGST: 6.00, Total: 111.99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLine(tt.unitPrice, tt.quantity, tt.gstRate, enum.PriceExclusive)
			if !almostEqual(got.Base, tt.want.Base) {
				t.Errorf("Base = %.2f, want %.2f", got.Base, tt.want.Base)
			}
			if !almostEqual(got.Tax, tt.want.Tax) {
				t.Errorf("Tax = %.2f, want %.2f", got.Tax, tt.want.Tax)
			}
			if !almostEqual(got.CGST, tt.want.CGST) {
				t.Errorf("CGST = %.2f, want %.2f", got.CGST, tt.want.CGST)
			}
			if !almostEqual(got.SGST, tt.want.SGST) {
				t.Errorf("SGST = %.2f, want %.2f", got.SGST, tt.want.SGST)
			}
			if !almostEqual(got.Total, tt.want.Total) {
				t.Errorf("Total = %.2f, want %.2f", got.Total, tt.want.Total)
			}
		})
	}
}

func TestComputeLineInclusive(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		gstRate   float64
		wantBase  float64
		wantTax   float64
		wantTotal float64
	}{
		{
			name:      "118 inclusive at 18 percent",
			unitPrice: 118.00,
			quantity:  1,
			gstRate:   18,
			wantBase:  100.00,
			wantTax:   18.00,
			wantTotal: 118.00,
		},
		{
			name:      "two units at 5 percent",
			unitPrice: 105.00,
			quantity:  2,
			gstRate:   5,
			wantBase:  200.00,
			wantTax:   10.00,
			wantTotal: 210.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLine(tt.unitPrice, tt.quantity, tt.gstRate, enum.PriceInclusive)
			if !almostEqual(got.Base, tt.wantBase) {
				t.Errorf("Base = %.2f, want %.2f", got.Base, tt.wantBase)
			}
			if !almostEqual(got.Tax, tt.wantTax) {
				t.Errorf("Tax = %.2f, want %.2f", got.Tax, tt.wantTax)
			}
			if !almostEqual(got.Total, tt.wantTotal) {
				t.Errorf("Total = %.2f, want %.2f", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestComputeLineZeroRateConventionsCoincide(t *testing.T) {
	excl := ComputeLine(75.50, 4, 0, enum.PriceExclusive)
	incl := ComputeLine(75.50, 4, 0, enum.PriceInclusive)

	if !almostEqual(excl.Base, incl.Base) || !almostEqual(excl.Total, incl.Total) {
		t.Errorf("conventions diverge at zero rate: exclusive %+v, inclusive %+v", excl, incl)
	}
	if excl.Tax != 0 || incl.Tax != 0 {
		t.Errorf("zero rate must yield zero tax, got %.2f and %.2f", excl.Tax, incl.Tax)
	}
}

func TestComputeLineTaxSplitsEvenly(t *testing.T) {
	for _, conv := range []enum.PriceConvention{enum.PriceExclusive, enum.PriceInclusive} {
		got := ComputeLine(99.99, 7, 12, conv)
		if !almostEqual(got.CGST, got.SGST) {
			t.Errorf("%s: CGST %.4f != SGST %.4f", conv, got.CGST, got.SGST)
		}
		if !almostEqual(got.CGST+got.SGST, got.Tax) {
			t.Errorf("%s: CGST+SGST %.4f != Tax %.4f", conv, got.CGST+got.SGST, got.Tax)
		}
	}
}
