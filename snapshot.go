package portfolio

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lusw/portfolio/month"
)

// Snapshot is the complete portfolio as exchanged with the remote service:
// an ordered list of positions and an ordered list of monthly records.
// There is no partial sync, a snapshot is always fetched and uploaded as
// one unit.
//
// A snapshot lives in memory for the session. Mutations are not
// synchronized; callers must confine them to a single goroutine.
type Snapshot struct {
	Positions []Position
	Histories []History
}

// TotalValue sums every position's market value in the display currency.
func (s *Snapshot) TotalValue(display Currency, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Positions {
		total = total.Add(p.ValueIn(display, rate))
	}
	return total
}

// TotalCost sums every position's cost basis in the display currency.
func (s *Snapshot) TotalCost(display Currency, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Positions {
		total = total.Add(p.CostIn(display, rate))
	}
	return total
}

// GainLoss is the difference between total value and total cost.
func (s *Snapshot) GainLoss(display Currency, rate decimal.Decimal) decimal.Decimal {
	return s.TotalValue(display, rate).Sub(s.TotalCost(display, rate))
}

// GainLossRate is the gain or loss relative to the total cost, in percent.
// It is undefined on a portfolio with zero total cost.
func (s *Snapshot) GainLossRate(display Currency, rate decimal.Decimal) (Percent, error) {
	cost := s.TotalCost(display, rate)
	if cost.IsZero() {
		return 0, fmt.Errorf("gain/loss rate is undefined on a zero-cost portfolio")
	}
	r := s.GainLoss(display, rate).Div(cost)
	return Percent(r.InexactFloat64() * 100), nil
}

// Share returns the position's share of the total portfolio value, in
// percent, for proportional displays. It is undefined on a zero-value
// portfolio.
func (s *Snapshot) Share(p Position, display Currency, rate decimal.Decimal) (Percent, error) {
	total := s.TotalValue(display, rate)
	if total.IsZero() {
		return 0, fmt.Errorf("share is undefined on a zero-value portfolio")
	}
	r := p.ValueIn(display, rate).Div(total)
	return Percent(r.InexactFloat64() * 100), nil
}

// Combined sums the tw and us sub-ledgers of a record into a single target
// currency. It is the synthetic "Total" series charted alongside the
// native Taiwan and United States series.
func Combined(h History, display Currency, rate decimal.Decimal) (cost, balance decimal.Decimal) {
	cost = h.TW.CostIn(display, rate).Add(h.US.CostIn(display, rate))
	balance = h.TW.BalanceIn(display, rate).Add(h.US.BalanceIn(display, rate))
	return cost, balance
}

// AddPosition appends a freshly created position.
func (s *Snapshot) AddPosition(p Position) {
	s.Positions = append(s.Positions, p)
}

// UpdatePosition replaces the position carrying the same identity.
func (s *Snapshot) UpdatePosition(p Position) error {
	for i := range s.Positions {
		if s.Positions[i].ID == p.ID {
			s.Positions[i] = p
			return nil
		}
	}
	return fmt.Errorf("unknown position %s", p.ID)
}

// RemovePosition deletes the position carrying the given identity.
func (s *Snapshot) RemovePosition(id uuid.UUID) error {
	for i := range s.Positions {
		if s.Positions[i].ID == id {
			s.Positions = slices.Delete(s.Positions, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("unknown position %s", id)
}

// PositionByTicker returns the first position with the given ticker.
func (s *Snapshot) PositionByTicker(ticker string) (Position, bool) {
	for _, p := range s.Positions {
		if p.Ticker == ticker {
			return p, true
		}
	}
	return Position{}, false
}

// AddHistory appends a monthly record.
func (s *Snapshot) AddHistory(h History) {
	s.Histories = append(s.Histories, h)
}

// UpdateHistory replaces the record carrying the same identity.
func (s *Snapshot) UpdateHistory(h History) error {
	for i := range s.Histories {
		if s.Histories[i].ID == h.ID {
			s.Histories[i] = h
			return nil
		}
	}
	return fmt.Errorf("unknown history record %s", h.ID)
}

// RemoveHistory deletes the record carrying the given identity. The next
// upload carries exactly one row less.
func (s *Snapshot) RemoveHistory(id uuid.UUID) error {
	for i := range s.Histories {
		if s.Histories[i].ID == id {
			s.Histories = slices.Delete(s.Histories, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("unknown history record %s", id)
}

// HistoryByDate returns the record for the given month.
func (s *Snapshot) HistoryByDate(m month.Month) (History, bool) {
	for _, h := range s.Histories {
		if h.Date == m {
			return h, true
		}
	}
	return History{}, false
}
