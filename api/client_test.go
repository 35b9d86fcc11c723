package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lusw/portfolio"
)

const snapshotBody = `{
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

func TestLogin(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "success", status: 200, body: `{"status":"success"}`},
		{name: "wrong password", status: 200, body: `{"status":"failed"}`, wantErr: true},
		{name: "other status word", status: 200, body: `{"status":"ok"}`, wantErr: true},
		{name: "malformed body", status: 200, body: `{`, wantErr: true},
		{name: "server error", status: 500, body: ``, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/login", r.URL.Path)
				require.NoError(t, r.ParseForm())
				require.Equal(t, "skywalker", r.PostForm.Get("username"))
				require.Equal(t, "s3cret", r.PostForm.Get("password"))
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := New(srv.URL).Login(context.Background(), "skywalker", "s3cret")
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	err := New(srv.URL).Login(context.Background(), "a", "b")
	require.Error(t, err)
}

func TestSessionCookieReplay(t *testing.T) {
	var sawCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			w.Header().Set("Set-Cookie", "session=abc123; Path=/; HttpOnly")
			w.Write([]byte(`{"status":"success"}`))
		case "/config":
			sawCookie = r.Header.Get("Cookie")
			w.Write([]byte(snapshotBody))
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Login(context.Background(), "a", "b"))
	require.Equal(t, "session=abc123", c.Session())

	_, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, "session=abc123", sawCookie)
}

func TestLogout(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusInternalServerError) // ignored
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetSession("session=abc")
	c.Logout(context.Background())
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/login", gotPath)
	require.Empty(t, c.Session())
}

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/config", r.URL.Path)
		w.Write([]byte(snapshotBody))
	}))
	defer srv.Close()

	s, err := New(srv.URL).FetchSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, s.Positions, 1)
	require.Len(t, s.Histories, 1)
	require.Equal(t, "QQQ", s.Positions[0].Ticker)
	require.Equal(t, "May 2024", s.Histories[0].Date.String())
}

func TestFetchSnapshotMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchSnapshot(context.Background())
	require.Error(t, err)
}

func TestUploadSnapshot(t *testing.T) {
	var gotBody string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(snapshotBody))
		case http.MethodPost:
			gotContentType = r.Header.Get("Content-Type")
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			gotBody = string(body)
			w.Write([]byte(`{"status":"success"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	s, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.UploadSnapshot(context.Background(), s))
	require.Equal(t, "application/json", gotContentType)
	require.Contains(t, gotBody, `"ticker":"QQQ"`)
	require.Contains(t, gotBody, `"date":"2024-05"`)
	require.Contains(t, gotBody, `"updated":true`)
}

func TestUploadSnapshotRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"denied"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).UploadSnapshot(context.Background(), &portfolio.Snapshot{})
	require.Error(t, err)
}

func TestQuoteMarketSuffix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"current": 612.5, "last": 608}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	q, err := c.Quote(context.Background(), "2330")
	require.NoError(t, err)
	require.Equal(t, "/stock/2330.TW", gotPath)
	require.Equal(t, "612.5", q.Current.String())
	require.Equal(t, "608", q.Last.String())

	_, err = c.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "/stock/AAPL", gotPath)
}

func TestExchangeRate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"current": 32.145, "last": 32.2}`))
	}))
	defer srv.Close()

	q, err := New(srv.URL).ExchangeRate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/currency/TWD", gotPath)
	require.Equal(t, "32.145", q.Current.String())
}

func TestLogoURL(t *testing.T) {
	c := New("https://example.com")
	require.Equal(t, "https://example.com/images/stocks/2330.png", c.LogoURL("2330"))
}
