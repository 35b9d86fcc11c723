package portfolio

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lusw/portfolio/month"
)

// SubHistory is one currency-tagged half of a monthly record: the cost
// invested in that market and the balance it reached, both in the tagged
// currency.
type SubHistory struct {
	Cost    decimal.Decimal
	Balance decimal.Decimal

	currency Currency
}

// Currency returns the sub-ledger's native currency.
func (s SubHistory) Currency() Currency { return s.currency }

// Equal compares cost and balance only. The currency tag is deliberately
// excluded: the app has always compared differently-tagged but numerically
// equal sub-ledgers as equal.
func (s SubHistory) Equal(o SubHistory) bool {
	return s.Cost.Equal(o.Cost) && s.Balance.Equal(o.Balance)
}

// CostIn returns the cost converted into the display currency.
func (s SubHistory) CostIn(display Currency, rate decimal.Decimal) decimal.Decimal {
	return Convert(s.Cost, s.currency, display, rate)
}

// BalanceIn returns the balance converted into the display currency.
func (s SubHistory) BalanceIn(display Currency, rate decimal.Decimal) decimal.Decimal {
	return Convert(s.Balance, s.currency, display, rate)
}

// History is one monthly snapshot of the two market sub-ledgers.
type History struct {
	ID   uuid.UUID
	Date month.Month
	TW   SubHistory
	US   SubHistory
}

// NewHistory creates a monthly record with a fresh identity.
func NewHistory(date month.Month, usCost, usBalance, twCost, twBalance decimal.Decimal) History {
	return History{
		ID:   uuid.New(),
		Date: date,
		US:   SubHistory{Cost: usCost, Balance: usBalance, currency: USD},
		TW:   SubHistory{Cost: twCost, Balance: twBalance, currency: TWD},
	}
}

// Equal reports whether two records carry the same date and sub-ledgers.
// Identity is excluded so a re-fetched record compares equal to its local
// twin.
func (h History) Equal(o History) bool {
	return h.Date == o.Date && h.TW.Equal(o.TW) && h.US.Equal(o.US)
}

// CAGR annualizes the return of a record given its 0-based position in the
// ordered history sequence. The result is a percentage.
//
// The exponent uses real-valued division (12 divided by elapsed months);
// the historical client truncated it to an integer, which produced a wrong
// annualization whenever the elapsed months did not divide 12 evenly.
func CAGR(monthIndex int, balance, cost decimal.Decimal) (Percent, error) {
	if cost.IsZero() {
		return 0, fmt.Errorf("cannot annualize a record with zero cost")
	}
	gainLoss := balance.Sub(cost)
	totalMonths := monthIndex + 1
	returns := gainLoss.Div(cost).InexactFloat64() + 1
	cagr := math.Pow(returns, 12/float64(totalMonths)) - 1
	return Percent(cagr * 100), nil
}
