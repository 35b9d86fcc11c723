package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/lusw/portfolio"
)

// HistoryMarkdown renders the monthly history report: the two native
// series in their own currencies, and the combined total in the report's
// display currency with its annualized return.
func HistoryMarkdown(r *portfolio.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly History (totals in %s)", r.Currency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "TW Cost", "TW Balance", "US Cost", "US Balance", "Total Cost", "Total Balance", "CAGR"},
		Rows:   [][]string{},
	}
	for _, line := range r.Lines {
		cagr := "-"
		if line.CAGRValid {
			cagr = line.CAGR.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			line.Date,
			portfolio.FormatMoney(line.TWCost, portfolio.TWD),
			portfolio.FormatMoney(line.TWBalance, portfolio.TWD),
			portfolio.FormatMoney(line.USCost, portfolio.USD),
			portfolio.FormatMoney(line.USBalance, portfolio.USD),
			portfolio.FormatMoney(line.TotalCost, r.Currency),
			portfolio.FormatMoney(line.TotalBalance, r.Currency),
			cagr,
		})
	}
	doc.Table(table)

	return doc.String()
}
