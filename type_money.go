package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the symbol and fraction rules of its
// currency, e.g. "$1,234.56" or "NT$43,381.00". Only display code calls
// this; stored amounts stay exact decimals.
func FormatMoney(amount decimal.Decimal, c Currency) string {
	// the Money constructor is the only way to get a never-nil currency.
	cur := money.New(0, string(c)).Currency()
	shifted := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// FormatSignedMoney is FormatMoney with an explicit sign, and zero as "-".
func FormatSignedMoney(amount decimal.Decimal, c Currency) string {
	if amount.IsZero() {
		return "-"
	}
	if amount.IsPositive() {
		return "+" + FormatMoney(amount, c)
	}
	return FormatMoney(amount, c)
}
