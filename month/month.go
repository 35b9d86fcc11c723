// Package month provides a month-granularity date type.
//
// The remote service exchanges reporting months as "2006-01" strings while
// the application displays and stores them as "Jan 2006". Both formats are
// accepted on parse, and converting between them always recovers the same
// calendar month.
package month

import (
	"encoding/json"
	"fmt"
	"time"
)

// WireFormat is the format used by the remote service ("yyyy-MM").
const WireFormat = "2006-01"

// DisplayFormat is the human readable format ("MMM yyyy").
const DisplayFormat = "Jan 2006"

// Month represents a calendar month with no lower granularity.
type Month struct {
	y int
	m time.Month
}

// time returns a time.Time that is a canonical representation of that month
// (first day at midnight UTC).
func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Month for the given year and month.
func New(year int, month time.Month) Month {
	m := Month{year, month}
	y, mm, _ := m.time().Date()
	return Month{y, mm}
}

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the calendar month.
func (m Month) Month() time.Month { return m.m }

// This returns the current month.
func This() Month {
	y, mm, _ := time.Now().Date()
	return New(y, mm)
}

// Next returns the month immediately after m.
func (m Month) Next() Month { return New(m.y, m.m+1) }

// Before reports whether m is before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// After reports whether m is after x.
func (m Month) After(x Month) bool { return m.time().After(x.time()) }

// Compare orders two months chronologically.
func (m Month) Compare(x Month) int { return m.time().Compare(x.time()) }

// String formats the month in its display format, e.g. "May 2024".
func (m Month) String() string { return m.time().Format(DisplayFormat) }

// Wire formats the month in the remote service format, e.g. "2024-05".
func (m Month) Wire() string { return m.time().Format(WireFormat) }

// Parse parses a Month from a string, accepting the wire format first and
// falling back to the display format.
func Parse(str string) (Month, error) {
	if on, err := time.Parse(WireFormat, str); err == nil {
		return New(on.Year(), on.Month()), nil
	}
	on, err := time.Parse(DisplayFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: want format %q or %q", str, WireFormat, DisplayFormat)
	}
	return New(on.Year(), on.Month()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	m, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// MarshalJSON implements json.Marshaler using the wire format.
func (m Month) MarshalJSON() ([]byte, error) { return json.Marshal(m.Wire()) }

// UnmarshalJSON implements json.Unmarshaler accepting both formats.
func (m *Month) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
