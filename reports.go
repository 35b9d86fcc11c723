package portfolio

import (
	"github.com/shopspring/decimal"
)

// This file builds the display-ready reports consumed by the renderer
// package. Reports are plain data: all conversion and aggregation happens
// here, formatting happens in the renderer.

// PositionLine is one row of the positions report, valued in the report's
// display currency.
type PositionLine struct {
	Ticker   string
	Name     string
	Native   Currency
	Quantity decimal.Decimal
	Cost     decimal.Decimal
	Value    decimal.Decimal
	GainLoss decimal.Decimal
	Share    Percent
}

// PositionsReport is the portfolio valued in a single display currency.
type PositionsReport struct {
	Currency     Currency
	Rate         decimal.Decimal
	Lines        []PositionLine
	TotalValue   decimal.Decimal
	TotalCost    decimal.Decimal
	GainLoss     decimal.Decimal
	GainLossRate Percent
}

// NewPositionsReport values every position in the display currency. A
// zero-cost or zero-value portfolio reports zero rates instead of failing;
// the guards matter to calculators, not to a report nobody can divide by.
func NewPositionsReport(s *Snapshot, display Currency, rate decimal.Decimal) *PositionsReport {
	r := &PositionsReport{
		Currency:   display,
		Rate:       rate,
		TotalValue: s.TotalValue(display, rate),
		TotalCost:  s.TotalCost(display, rate),
	}
	r.GainLoss = r.TotalValue.Sub(r.TotalCost)
	if glr, err := s.GainLossRate(display, rate); err == nil {
		r.GainLossRate = glr
	}
	for _, p := range s.Positions {
		line := PositionLine{
			Ticker:   p.Ticker,
			Name:     p.Name,
			Native:   p.Currency(),
			Quantity: p.Quantity,
			Cost:     p.CostIn(display, rate),
			Value:    p.ValueIn(display, rate),
		}
		line.GainLoss = line.Value.Sub(line.Cost)
		if share, err := s.Share(p, display, rate); err == nil {
			line.Share = share
		}
		r.Lines = append(r.Lines, line)
	}
	return r
}

// HistoryLine is one month of the history report: the two native
// sub-ledgers plus the synthetic total in the display currency.
type HistoryLine struct {
	Date         string
	TWCost       decimal.Decimal
	TWBalance    decimal.Decimal
	USCost       decimal.Decimal
	USBalance    decimal.Decimal
	TotalCost    decimal.Decimal
	TotalBalance decimal.Decimal
	CAGR         Percent
	CAGRValid    bool
}

// HistoryReport is the monthly balance history with the Taiwan, United
// States and synthetic Total series.
type HistoryReport struct {
	Currency Currency
	Rate     decimal.Decimal
	Lines    []HistoryLine
}

// NewHistoryReport combines each record's sub-ledgers into the display
// currency and annualizes the combined return, record by record in
// sequence order. Zero-cost records simply carry no rate.
func NewHistoryReport(s *Snapshot, display Currency, rate decimal.Decimal) *HistoryReport {
	r := &HistoryReport{Currency: display, Rate: rate}
	for i, h := range s.Histories {
		cost, balance := Combined(h, display, rate)
		line := HistoryLine{
			Date:         h.Date.String(),
			TWCost:       h.TW.Cost,
			TWBalance:    h.TW.Balance,
			USCost:       h.US.Cost,
			USBalance:    h.US.Balance,
			TotalCost:    cost,
			TotalBalance: balance,
		}
		if cagr, err := CAGR(i, balance, cost); err == nil {
			line.CAGR = cagr
			line.CAGRValid = true
		}
		r.Lines = append(r.Lines, line)
	}
	return r
}
