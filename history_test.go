package portfolio

import (
	"math"
	"testing"
	"time"

	"github.com/lusw/portfolio/month"
)

func may2024() month.Month { return month.New(2024, time.May) }

func TestSubHistoryEqualIgnoresCurrency(t *testing.T) {
	// The currency tag has never been part of sub-ledger equality; two
	// numerically equal halves compare equal across markets.
	a := SubHistory{Cost: d("900"), Balance: d("904.86"), currency: USD}
	b := SubHistory{Cost: d("900"), Balance: d("904.86"), currency: TWD}
	if !a.Equal(b) {
		t.Error("numerically equal sub-ledgers with different tags should be equal")
	}

	c := SubHistory{Cost: d("900"), Balance: d("905"), currency: USD}
	if a.Equal(c) {
		t.Error("different balances should not be equal")
	}
}

func TestHistoryEqual(t *testing.T) {
	a := NewHistory(may2024(), d("900"), d("904.86"), d("43381"), d("43880"))
	b := NewHistory(may2024(), d("900"), d("904.86"), d("43381"), d("43880"))
	if !a.Equal(b) {
		t.Error("identical records should be equal regardless of identity")
	}

	c := NewHistory(may2024().Next(), d("900"), d("904.86"), d("43381"), d("43880"))
	if a.Equal(c) {
		t.Error("records of different months should not be equal")
	}
}

func TestSubHistoryConversion(t *testing.T) {
	rate := d("30")
	tw := SubHistory{Cost: d("43381"), Balance: d("43880"), currency: TWD}

	if got := tw.CostIn(TWD, rate); !got.Equal(d("43381")) {
		t.Errorf("native cost = %v", got)
	}
	if got := tw.BalanceIn(USD, rate); !got.Equal(d("43880").Div(d("30"))) {
		t.Errorf("converted balance = %v", got)
	}
}

func TestCAGR(t *testing.T) {
	// First month of the sequence: the return is annualized over 12/1.
	got, err := CAGR(0, d("1000"), d("900"))
	if err != nil {
		t.Fatalf("CAGR: %v", err)
	}
	want := Percent((math.Pow(1+100.0/900.0, 12) - 1) * 100) // approx 254.07%
	if !got.Equal(want) {
		t.Errorf("CAGR(0, 1000, 900) = %v, want %v", got, want)
	}

	// Twelfth month: one full year elapsed, the rate is the plain return.
	got, err = CAGR(11, d("1000"), d("900"))
	if err != nil {
		t.Fatalf("CAGR: %v", err)
	}
	if want := Percent(100.0 / 9.0); !got.Equal(want) {
		t.Errorf("CAGR(11, 1000, 900) = %v, want %v", got, want)
	}
}

// TestCAGRRealExponent pins the annualization to real-valued exponents for
// month counts that do not divide 12 evenly.
func TestCAGRRealExponent(t *testing.T) {
	got, err := CAGR(4, d("1100"), d("1000")) // 5 elapsed months
	if err != nil {
		t.Fatalf("CAGR: %v", err)
	}
	want := Percent((math.Pow(1.1, 12.0/5.0) - 1) * 100)
	if !got.Equal(want) {
		t.Errorf("CAGR(4, 1100, 1000) = %v, want %v", got, want)
	}
}

func TestCAGRZeroCost(t *testing.T) {
	if _, err := CAGR(0, d("1000"), d("0")); err == nil {
		t.Error("zero cost should be rejected")
	}
}
