package portfolio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Placeholder prices carried by a position until its first quote arrives.
var (
	placeholderCurrent = decimal.NewFromFloat(457.95)
	placeholderLast    = decimal.NewFromFloat(455.71)
)

// Position is a single holding: identity, quantity, total cost basis and
// live prices, all in the position's native currency.
type Position struct {
	ID       uuid.UUID
	Ticker   string
	Name     string
	Quantity decimal.Decimal
	Cost     decimal.Decimal
	Current  decimal.Decimal
	Last     decimal.Decimal
	Color    string // "#RRGGBB", used by chart display layers.

	// currency is derived from the ticker exactly once at construction and
	// never recomputed, even if the ticker is edited afterwards.
	currency Currency
}

// NewPosition creates a position with a fresh identity and placeholder
// prices. The native currency is frozen from the ticker at this point.
func NewPosition(ticker, name string, quantity, cost decimal.Decimal, color string) Position {
	return Position{
		ID:       uuid.New(),
		Ticker:   ticker,
		Name:     name,
		Quantity: quantity,
		Cost:     cost,
		Color:    color,
		Current:  placeholderCurrent,
		Last:     placeholderLast,
		currency: CurrencyOf(ticker),
	}
}

// Currency returns the position's native currency.
func (p Position) Currency() Currency { return p.currency }

// CostIn returns the cost basis converted into the display currency.
func (p Position) CostIn(display Currency, rate decimal.Decimal) decimal.Decimal {
	return Convert(p.Cost, p.currency, display, rate)
}

// ValueIn returns the current market value (price times quantity) converted
// into the display currency.
func (p Position) ValueIn(display Currency, rate decimal.Decimal) decimal.Decimal {
	return Convert(p.Current.Mul(p.Quantity), p.currency, display, rate)
}
