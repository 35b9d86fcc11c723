package api

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lusw/portfolio"
)

// Refresh fetches the exchange rate and one quote per position, all
// concurrently, joins every request, and only then applies the results to
// the snapshot. Joining before mutating removes the last-writer-wins race
// the original client had between in-flight quote responses.
//
// Positions whose quote failed keep their previous prices, and a failed
// rate fetch falls back to fallbackRate. The returned error aggregates the
// individual failures for reporting; the snapshot is usable either way.
func Refresh(ctx context.Context, c *Client, s *portfolio.Snapshot, fallbackRate decimal.Decimal) (decimal.Decimal, error) {
	type result struct {
		quote Quote
		err   error
	}
	results := make([]result, len(s.Positions))
	var rate result

	var wg sync.WaitGroup
	wg.Add(len(s.Positions) + 1)
	go func() {
		defer wg.Done()
		rate.quote, rate.err = c.ExchangeRate(ctx)
	}()
	for i := range s.Positions {
		go func(i int, ticker string) {
			defer wg.Done()
			results[i].quote, results[i].err = c.Quote(ctx, ticker)
		}(i, s.Positions[i].Ticker)
	}
	wg.Wait()

	var errs []error
	for i := range s.Positions {
		if results[i].err != nil {
			errs = append(errs, fmt.Errorf("quote %s: %w", s.Positions[i].Ticker, results[i].err))
			continue
		}
		s.Positions[i].Current = results[i].quote.Current
		s.Positions[i].Last = results[i].quote.Last
	}

	newRate := fallbackRate
	if rate.err != nil {
		errs = append(errs, fmt.Errorf("exchange rate: %w", rate.err))
	} else {
		newRate = rate.quote.Current
	}
	return newRate, errors.Join(errs...)
}
