package portfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is one of the two bases a monetary amount can be denominated in.
type Currency string

const (
	USD Currency = "USD"
	TWD Currency = "TWD"
)

// ParseCurrency validates and returns a Currency from its code.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(strings.ToUpper(code)) {
	case USD:
		return USD, nil
	case TWD:
		return TWD, nil
	}
	return "", fmt.Errorf("invalid currency %q: want %q or %q", code, USD, TWD)
}

// CurrencyOf derives the native currency of a ticker. Tickers containing a
// decimal digit are Taiwan market listings and trade in TWD, everything
// else trades in USD.
func CurrencyOf(ticker string) Currency {
	if strings.ContainsAny(ticker, "0123456789") {
		return TWD
	}
	return USD
}

// Convert converts an amount between the two currency bases given the
// TWD-per-USD exchange rate. It is the identity when from equals to;
// otherwise it multiplies (USD to TWD) or divides (TWD to USD) by the rate.
// No rounding is performed.
func Convert(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) decimal.Decimal {
	if from == to {
		return amount
	}
	if to == TWD {
		return amount.Mul(rate)
	}
	return amount.Div(rate)
}
