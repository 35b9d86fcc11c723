package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lusw/portfolio"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSnapshot() *portfolio.Snapshot {
	s := &portfolio.Snapshot{}
	s.AddPosition(portfolio.NewPosition("2330", "TSMC", d("100"), d("50000"), "#AA0000"))
	s.AddPosition(portfolio.NewPosition("QQQ", "Invesco QQQ", d("2"), d("700"), "#00AA00"))
	return s
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stock/2330.TW":
			w.Write([]byte(`{"current": 612, "last": 608}`))
		case "/stock/QQQ":
			w.Write([]byte(`{"current": 450.5, "last": 448}`))
		case "/currency/TWD":
			w.Write([]byte(`{"current": 32.1, "last": 32.0}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := testSnapshot()
	rate, err := Refresh(context.Background(), New(srv.URL), s, d("30"))
	require.NoError(t, err)
	require.Equal(t, "32.1", rate.String())
	require.Equal(t, "612", s.Positions[0].Current.String())
	require.Equal(t, "608", s.Positions[0].Last.String())
	require.Equal(t, "450.5", s.Positions[1].Current.String())
}

// TestRefreshPartialFailure checks that a failed quote keeps the previous
// prices and a failed rate falls back, while the error reports both.
func TestRefreshPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stock/QQQ":
			w.Write([]byte(`{"current": 450.5, "last": 448}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := testSnapshot()
	before := s.Positions[0].Current

	rate, err := Refresh(context.Background(), New(srv.URL), s, d("30"))
	require.Error(t, err)
	require.ErrorContains(t, err, "2330")
	require.ErrorContains(t, err, "exchange rate")

	require.Equal(t, "30", rate.String())
	require.True(t, s.Positions[0].Current.Equal(before), "failed quote must keep previous price")
	require.Equal(t, "450.5", s.Positions[1].Current.String())
}

func TestRefreshEmptySnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": 31, "last": 30.9}`))
	}))
	defer srv.Close()

	rate, err := Refresh(context.Background(), New(srv.URL), &portfolio.Snapshot{}, d("30"))
	require.NoError(t, err)
	require.Equal(t, "31", rate.String())
}
