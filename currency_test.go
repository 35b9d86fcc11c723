package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrencyOf(t *testing.T) {
	testCases := []struct {
		ticker string
		want   Currency
	}{
		{"2330", TWD},
		{"0050", TWD},
		{"00878", TWD},
		{"AAPL", USD},
		{"QQQ", USD},
		{"VT", USD},
		{"BRK.B", USD},
	}
	for _, tc := range testCases {
		if got := CurrencyOf(tc.ticker); got != tc.want {
			t.Errorf("CurrencyOf(%q) = %v, want %v", tc.ticker, got, tc.want)
		}
	}
}

func TestConvertIdentity(t *testing.T) {
	amount := decimal.RequireFromString("1234.5678")
	rate := decimal.RequireFromString("32.5")
	for _, cur := range []Currency{USD, TWD} {
		if got := Convert(amount, cur, cur, rate); !got.Equal(amount) {
			t.Errorf("Convert(%v, %v, %v) = %v, want identity", amount, cur, cur, got)
		}
	}
}

func TestConvertDirection(t *testing.T) {
	rate := decimal.RequireFromString("30")
	fiveUSD := decimal.RequireFromString("5")

	if got, want := Convert(fiveUSD, USD, TWD, rate), decimal.RequireFromString("150"); !got.Equal(want) {
		t.Errorf("USD to TWD = %v, want %v", got, want)
	}
	if got, want := Convert(decimal.RequireFromString("150"), TWD, USD, rate), fiveUSD; !got.Equal(want) {
		t.Errorf("TWD to USD = %v, want %v", got, want)
	}
}

// TestConvertRoundTrip checks that converting there and back is exact,
// thanks to the decimal representation.
func TestConvertRoundTrip(t *testing.T) {
	amounts := []string{"0", "1", "904.86", "43381", "0.666", "123456789.123456789"}
	rates := []string{"30", "32.5", "29.875"}
	for _, a := range amounts {
		for _, r := range rates {
			amount := decimal.RequireFromString(a)
			rate := decimal.RequireFromString(r)
			back := Convert(Convert(amount, USD, TWD, rate), TWD, USD, rate)
			if !back.Equal(amount) {
				t.Errorf("round-trip of %s at rate %s = %v, want %s", a, r, back, a)
			}
		}
	}
}

func TestParseCurrency(t *testing.T) {
	if c, err := ParseCurrency("usd"); err != nil || c != USD {
		t.Errorf("ParseCurrency(usd) = %v, %v", c, err)
	}
	if c, err := ParseCurrency("TWD"); err != nil || c != TWD {
		t.Errorf("ParseCurrency(TWD) = %v, %v", c, err)
	}
	if _, err := ParseCurrency("EUR"); err == nil {
		t.Error("ParseCurrency(EUR) should fail")
	}
}
