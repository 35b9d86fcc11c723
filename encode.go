package portfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/lusw/portfolio/month"
)

// This file contains the codec for the snapshot document exchanged with the
// remote service on GET/POST /config.
//
// The wire schema is fixed:
//
//	{
//	  "assert":    [ {"color":..,"cost":..,"current":..,"last":..,"name":..,
//	                  "quantity":..,"ticker":..,"updated":..}, ... ],
//	  "portfolio": [ {"date":"yyyy-MM","tw":{"cost":..,"value":..},
//	                               "us":{"cost":..,"value":..}}, ... ]
//	}
//
// Months travel as "yyyy-MM" and are redisplayed as "MMM yyyy"; the codec
// converts in both directions. Decimals travel as bare JSON numbers.

// jdec marshals a decimal as a bare JSON number instead of the quoted
// string the decimal package emits by default.
type jdec struct{ decimal.Decimal }

func (d jdec) MarshalJSON() ([]byte, error) { return []byte(d.String()), nil }

// to parse and emit the document we use dedicated local structs with tag
// annotations.

type jposition struct {
	Color    string `json:"color"`
	Cost     jdec   `json:"cost"`
	Current  jdec   `json:"current"`
	Last     jdec   `json:"last"`
	Name     string `json:"name"`
	Quantity jdec   `json:"quantity"`
	Ticker   string `json:"ticker"`
	Updated  bool   `json:"updated"`
}

type jsubhistory struct {
	Cost  jdec `json:"cost"`
	Value jdec `json:"value"`
}

type jhistory struct {
	Date string      `json:"date"`
	TW   jsubhistory `json:"tw"`
	US   jsubhistory `json:"us"`
}

type jsnapshot struct {
	Assert    []jposition `json:"assert"`
	Portfolio []jhistory  `json:"portfolio"`
}

// DecodeSnapshot parses a snapshot document. Positions are rebuilt through
// their constructor, so each gets a fresh identity, its currency frozen
// from the ticker, and placeholder prices until the first quote arrives;
// the wire current/last/updated fields are not carried over.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var doc jsnapshot
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot document: %w", err)
	}

	s := &Snapshot{}
	for _, a := range doc.Assert {
		s.Positions = append(s.Positions, NewPosition(a.Ticker, a.Name, a.Quantity.Decimal, a.Cost.Decimal, a.Color))
	}
	for _, h := range doc.Portfolio {
		m, err := month.Parse(h.Date)
		if err != nil {
			return nil, fmt.Errorf("cannot decode snapshot document: %w", err)
		}
		s.Histories = append(s.Histories, NewHistory(m, h.US.Cost.Decimal, h.US.Value.Decimal, h.TW.Cost.Decimal, h.TW.Value.Decimal))
	}
	return s, nil
}

// EncodeSnapshot writes the snapshot document for upload. Every asset is
// marked updated, and dates are converted back to wire form.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	doc := jsnapshot{
		Assert:    make([]jposition, 0, len(s.Positions)),
		Portfolio: make([]jhistory, 0, len(s.Histories)),
	}
	for _, p := range s.Positions {
		doc.Assert = append(doc.Assert, jposition{
			Color:    p.Color,
			Cost:     jdec{p.Cost},
			Current:  jdec{p.Current},
			Last:     jdec{p.Last},
			Name:     p.Name,
			Quantity: jdec{p.Quantity},
			Ticker:   p.Ticker,
			Updated:  true,
		})
	}
	for _, h := range s.Histories {
		doc.Portfolio = append(doc.Portfolio, jhistory{
			Date: h.Date.Wire(),
			TW:   jsubhistory{Cost: jdec{h.TW.Cost}, Value: jdec{h.TW.Balance}},
			US:   jsubhistory{Cost: jdec{h.US.Cost}, Value: jdec{h.US.Balance}},
		})
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("cannot encode snapshot document: %w", err)
	}
	return nil
}
