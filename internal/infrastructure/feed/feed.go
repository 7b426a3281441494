// Package feed fetches the highlights JSON feed.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/domain/highlight"
	"golang.org/x/time/rate"
)

const (
	feedAcceptHeader = "application/json, text/plain;q=0.5, */*;q=0.1"
	cacheBusterParam = "t"
	defaultUserAgent = "Highlights/1.0"
	defaultTimeout   = 10 * time.Second
)

type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	clone.Header.Set("Cache-Control", "no-cache")
	clone.Header.Set("Pragma", "no-cache")
	return base.RoundTrip(clone)
}

// Options configures a Client.
type Options struct {
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64
	Burst             int
	// Transport overrides the underlying round tripper.
	Transport http.RoundTripper
	Now       func() time.Time
}

// OptionsFromSettings derives client options from application settings.
func OptionsFromSettings(s settings.Settings) Options {
	return Options{
		Timeout:           s.FetchTimeout(),
		UserAgent:         s.Fetch.UserAgent,
		RequestsPerSecond: s.Fetch.RequestsPerSecond,
		Burst:             s.Fetch.Burst,
	}
}

// Client fetches and decodes the feed. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	now     func() time.Time
}

// NewClient constructs a Client.
func NewClient(opt Options) *Client {
	ua := strings.TrimSpace(opt.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	timeout := opt.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if opt.RequestsPerSecond > 0 {
		limit = rate.Limit(opt.RequestsPerSecond)
	}
	burst := max(opt.Burst, 1)
	now := opt.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		http:    &http.Client{Transport: headerTransport{base: opt.Transport, userAgent: ua}},
		limiter: rate.NewLimiter(limit, burst),
		timeout: timeout,
		now:     now,
	}
}

// Fetch performs exactly one request for the feed at rawURL.
// A placeholder URL returns usecase.ErrUnconfigured without touching the network;
// every other failure is a *usecase.FetchError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*highlight.Document, error) {
	if settings.IsPlaceholder(rawURL) {
		return nil, usecase.ErrUnconfigured
	}
	if ctx == nil {
		ctx = context.Background()
	}
	target, err := CacheBusted(strings.TrimSpace(rawURL), c.now())
	if err != nil {
		return nil, &usecase.FetchError{Reason: usecase.ReasonNetwork, Err: err}
	}

	if err := c.throttle(ctx); err != nil {
		return nil, &usecase.FetchError{Reason: usecase.ReasonNetwork, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &usecase.FetchError{Reason: usecase.ReasonNetwork, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &usecase.FetchError{Reason: usecase.ReasonNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &usecase.FetchError{Reason: usecase.ReasonStatus, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	doc, err := decodeDocument(resp.Body)
	if err != nil {
		return nil, &usecase.FetchError{Reason: usecase.ReasonDecode, Err: err}
	}
	return doc, nil
}

// decodeDocument reads exactly one JSON document; anything after it other
// than whitespace is an error.
func decodeDocument(r io.Reader) (*highlight.Document, error) {
	dec := json.NewDecoder(r)
	doc := new(highlight.Document)
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after feed document")
	}
	return doc, nil
}

// throttle blocks until the limiter admits one request. The request timeout
// does not run while waiting, so a queued cycle is delayed rather than failed;
// only cancellation of ctx ends the wait early.
func (c *Client) throttle(ctx context.Context) error {
	r := c.limiter.Reserve()
	if !r.OK() {
		return errors.New("feed rate limit cannot admit a request")
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

// CacheBusted appends a time-derived query parameter to rawURL so that no
// intermediate cache can answer the request.
func CacheBusted(rawURL string, now time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("feed url %q is not absolute", rawURL)
	}
	q := u.Query()
	q.Set(cacheBusterParam, strconv.FormatInt(now.UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
