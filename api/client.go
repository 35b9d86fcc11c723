// Package api implements the client of the remote portfolio service.
//
// Every operation is a single request/response exchange: no retries, no
// backoff. Transport failures, malformed bodies and business failures
// (a 200 whose status field is not "success") are all surfaced the same
// way, as a plain error; retrying and user notification are entirely the
// caller's business.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/lusw/portfolio"
)

// DefaultBase is the production endpoint.
const DefaultBase = "https://fin.lusw.dev"

// Quote is a live price: the current value and the previous close, in the
// instrument's native currency.
type Quote struct {
	Current decimal.Decimal `json:"current"`
	Last    decimal.Decimal `json:"last"`
}

// Client talks to the remote portfolio service. The zero value is not
// usable, use New.
type Client struct {
	base   string
	client *http.Client

	// session is the Cookie header value captured at login and replayed on
	// every subsequent request.
	session string
}

// New returns a client for the given base URL, or the production endpoint
// when base is empty.
func New(base string) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Session returns the session cookie captured at login, for persisting
// across invocations.
func (c *Client) Session() string { return c.session }

// SetSession restores a previously captured session cookie.
func (c *Client) SetSession(cookie string) { c.session = cookie }

// do executes one request and returns the response body. Any status above
// 2xx is an error: the service signals business failures in the body, not
// the status line, so anything else is a transport-level problem.
func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.session != "" {
		req.Header.Set("Cookie", c.session)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	log.Printf("%s %s%s %s", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read response of %s %s: %w", req.Method, req.URL.Path, err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
	}
	if cookies := resp.Header.Values("Set-Cookie"); len(cookies) > 0 {
		c.session = strings.Split(cookies[0], ";")[0]
	}
	return body, nil
}

// statusOK reports whether a response body is a JSON object whose status
// field equals "success".
func statusOK(body []byte) bool {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return false
	}
	jval, err := jsonpath.Get("$.status", jobj)
	if err != nil {
		return false
	}
	status, ok := jval.(string)
	return ok && status == "success"
}

// Login authenticates with the service. Success is determined solely by
// the status field of the response body.
func (c *Client) Login(ctx context.Context, account, password string) error {
	form := url.Values{}
	form.Set("username", account)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("cannot create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return err
	}
	if !statusOK(body) {
		return fmt.Errorf("login refused for %q", account)
	}
	return nil
}

// Logout fires the logout request. The response is not checked; the app
// has never cared whether the server actually heard it.
func (c *Client) Logout(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/login", nil)
	if err != nil {
		return
	}
	c.do(req)
	c.session = ""
}

// FetchSnapshot downloads and decodes the full portfolio document.
func (c *Client) FetchSnapshot(ctx context.Context) (*portfolio.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/config", nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create snapshot request: %w", err)
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return portfolio.DecodeSnapshot(bytes.NewReader(body))
}

// UploadSnapshot pushes the full portfolio document back to the service.
func (c *Client) UploadSnapshot(ctx context.Context, s *portfolio.Snapshot) error {
	var buf bytes.Buffer
	if err := portfolio.EncodeSnapshot(&buf, s); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/config", &buf)
	if err != nil {
		return fmt.Errorf("cannot create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return err
	}
	if !statusOK(body) {
		return fmt.Errorf("upload refused")
	}
	return nil
}

// marketTicker appends the Taiwan market suffix to tickers that trade
// there, mirroring the currency derivation rule.
func marketTicker(ticker string) string {
	if portfolio.CurrencyOf(ticker) == portfolio.TWD {
		return ticker + ".TW"
	}
	return ticker
}

func (c *Client) quote(ctx context.Context, path, ticker string) (Quote, error) {
	addr := c.base + path + marketTicker(ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("cannot create quote request: %w", err)
	}
	body, err := c.do(req)
	if err != nil {
		return Quote{}, err
	}
	var q Quote
	if err := json.Unmarshal(body, &q); err != nil {
		return Quote{}, fmt.Errorf("cannot decode quote for %q: %w", ticker, err)
	}
	return q, nil
}

// Quote fetches the live price of a stock.
func (c *Client) Quote(ctx context.Context, ticker string) (Quote, error) {
	return c.quote(ctx, "/stock/", ticker)
}

// ExchangeRate fetches the TWD-per-USD exchange rate. The rate is served
// as just another ticker.
func (c *Client) ExchangeRate(ctx context.Context) (Quote, error) {
	return c.quote(ctx, "/currency/", "TWD")
}

// LogoURL returns the address of a ticker's logo image, used directly by
// display layers.
func (c *Client) LogoURL(ticker string) string {
	return c.base + "/images/stocks/" + ticker + ".png"
}
