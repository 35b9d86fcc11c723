package portfolio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const snapshotFixture = `{
  "assert": [
    {"color": "#3A86FF", "cost": 300, "current": 442.33, "last": 440.18,
     "name": "Invesco QQQ", "quantity": 0.666, "ticker": "QQQ", "updated": false}
  ],
  "portfolio": [
    {"date": "2024-05",
     "tw": {"cost": 43381, "value": 43880},
     "us": {"cost": 900, "value": 904.86}}
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(snapshotFixture))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if len(s.Positions) != 1 || len(s.Histories) != 1 {
		t.Fatalf("decoded %d positions and %d histories", len(s.Positions), len(s.Histories))
	}

	p := s.Positions[0]
	if p.Ticker != "QQQ" || p.Name != "Invesco QQQ" || p.Color != "#3A86FF" {
		t.Errorf("position = %+v", p)
	}
	if !p.Cost.Equal(d("300")) || !p.Quantity.Equal(d("0.666")) {
		t.Errorf("cost/quantity = %v / %v", p.Cost, p.Quantity)
	}
	if p.Currency() != USD {
		t.Errorf("currency = %v, want USD", p.Currency())
	}
	// wire prices are discarded, positions start on placeholders
	if p.Current.Equal(d("442.33")) {
		t.Error("wire current price should not be carried over")
	}

	h := s.Histories[0]
	if got := h.Date.String(); got != "May 2024" {
		t.Errorf("date redisplayed as %q, want %q", got, "May 2024")
	}
	if !h.TW.Cost.Equal(d("43381")) || !h.TW.Balance.Equal(d("43880")) {
		t.Errorf("tw = %+v", h.TW)
	}
	if !h.US.Cost.Equal(d("900")) || !h.US.Balance.Equal(d("904.86")) {
		t.Errorf("us = %+v", h.US)
	}
	if h.TW.Currency() != TWD || h.US.Currency() != USD {
		t.Errorf("sub-ledger tags = %v / %v", h.TW.Currency(), h.US.Currency())
	}
}

// TestSnapshotRoundTrip decodes, re-encodes and re-decodes the fixture and
// expects an identical in-memory snapshot.
func TestSnapshotRoundTrip(t *testing.T) {
	first, err := DecodeSnapshot(strings.NewReader(snapshotFixture))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, first); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	second, err := DecodeSnapshot(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeSnapshot (round-trip): %v", err)
	}

	if len(first.Positions) != len(second.Positions) || len(first.Histories) != len(second.Histories) {
		t.Fatal("round-trip changed collection sizes")
	}
	for i := range first.Positions {
		a, b := first.Positions[i], second.Positions[i]
		if a.Ticker != b.Ticker || a.Name != b.Name || a.Color != b.Color ||
			!a.Cost.Equal(b.Cost) || !a.Quantity.Equal(b.Quantity) || a.Currency() != b.Currency() {
			t.Errorf("position %d differs: %+v vs %+v", i, a, b)
		}
	}
	for i := range first.Histories {
		if !first.Histories[i].Equal(second.Histories[i]) {
			t.Errorf("history %d differs", i)
		}
	}
}

// TestEncodeWireShape pins the upload document shape: wire dates, bare
// numbers, and every asset marked updated.
func TestEncodeWireShape(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(snapshotFixture))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	var doc struct {
		Assert []struct {
			Cost    json.Number `json:"cost"`
			Updated bool        `json:"updated"`
		} `json:"assert"`
		Portfolio []struct {
			Date string `json:"date"`
		} `json:"portfolio"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if doc.Portfolio[0].Date != "2024-05" {
		t.Errorf("uploaded date = %q, want %q", doc.Portfolio[0].Date, "2024-05")
	}
	if !doc.Assert[0].Updated {
		t.Error("uploaded asset should be marked updated")
	}
	if doc.Assert[0].Cost.String() != "300" {
		t.Errorf("uploaded cost = %s, want a bare number 300", doc.Assert[0].Cost)
	}
	if strings.Contains(buf.String(), `"cost":"`) {
		t.Error("decimals should be encoded as numbers, not strings")
	}
}

// TestUploadAfterDeletion removes a history row and checks the uploaded
// portfolio array shrinks by exactly one.
func TestUploadAfterDeletion(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(snapshotFixture))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	s.AddHistory(NewHistory(may2024().Next(), d("950"), d("960"), d("44000"), d("44500")))

	if err := s.RemoveHistory(s.Histories[0].ID); err != nil {
		t.Fatalf("RemoveHistory: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	var doc struct {
		Portfolio []struct {
			Date string `json:"date"`
		} `json:"portfolio"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(doc.Portfolio) != 1 {
		t.Fatalf("uploaded portfolio has %d rows, want 1", len(doc.Portfolio))
	}
	if doc.Portfolio[0].Date != "2024-06" {
		t.Errorf("remaining row = %q, want %q", doc.Portfolio[0].Date, "2024-06")
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"",
		"not json",
		`{"assert": "nope"}`,
		`{"assert": [], "portfolio": [{"date": "May"}]}`,
	}
	for _, c := range cases {
		if _, err := DecodeSnapshot(strings.NewReader(c)); err == nil {
			t.Errorf("DecodeSnapshot(%q) should fail", c)
		}
	}
}
