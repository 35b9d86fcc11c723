package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/lusw/portfolio"
)

// PositionsMarkdown renders the positions report to a markdown string.
func PositionsMarkdown(r *portfolio.PositionsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Positions in %s", r.Currency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Name", "Quantity", "Cost", "Value", "Gain/Loss", "Share"},
		Rows:   [][]string{},
	}
	for _, line := range r.Lines {
		table.Rows = append(table.Rows, []string{
			line.Ticker,
			line.Name,
			line.Quantity.String(),
			portfolio.FormatMoney(line.Cost, r.Currency),
			portfolio.FormatMoney(line.Value, r.Currency),
			portfolio.FormatSignedMoney(line.GainLoss, r.Currency),
			line.Share.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SummaryMarkdown renders the totals block of a positions report.
func SummaryMarkdown(r *portfolio.PositionsReport) string {
	data := struct {
		Currency     portfolio.Currency
		TotalValue   string
		TotalCost    string
		GainLoss     string
		GainLossRate string
	}{
		Currency:     r.Currency,
		TotalValue:   portfolio.FormatMoney(r.TotalValue, r.Currency),
		TotalCost:    portfolio.FormatMoney(r.TotalCost, r.Currency),
		GainLoss:     portfolio.FormatSignedMoney(r.GainLoss, r.Currency),
		GainLossRate: r.GainLossRate.SignedString(),
	}
	return renderTemplate("summary", "summary.md", nil, data)
}
