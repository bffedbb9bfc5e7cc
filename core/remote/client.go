package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"errors"
	"io"
	"math/big"
	"net"
	"net/http"
	"time"
)

// FetchTimeout bounds a whole source request: connection, headers and body.
const FetchTimeout = 500 * time.Millisecond

// MaxBodyBytes caps the size of a source response body.
const MaxBodyBytes = 4 << 20

// ErrBodyTooLarge is the cause reported for bodies over MaxBodyBytes.
var ErrBodyTooLarge = errors.New("body exceeds limit")

// Fetcher retrieves the numbers published by one source.
type Fetcher interface {
	// FetchNumbers returns the integers in the source's "numbers" field.
	// A missing or malformed field yields an empty slice and no error.
	FetchNumbers(ctx context.Context, url string) ([]int64, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	http      *http.Client
	userAgent string
	timeout   time.Duration
}

// NewClient creates a source client based on the configuration.
func NewClient(cfg Config) *Client {
	idle := cfg.MaxIdleConnsPerHost
	if idle <= 0 {
		idle = 16
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   FetchTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   idle,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   FetchTimeout,
		ResponseHeaderTimeout: FetchTimeout,
	}

	return &Client{
		http:      &http.Client{Transport: transport, Timeout: FetchTimeout},
		userAgent: cfg.UserAgent,
		timeout:   FetchTimeout,
	}
}

// payload is the expected source body. Numbers is decoded lazily so that a
// malformed field does not invalidate an otherwise well-formed object.
type payload struct {
	Numbers json.RawMessage `json:"numbers"`
}

// FetchNumbers performs a GET against url and extracts its numbers.
func (c *Client) FetchNumbers(ctx context.Context, url string) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceError{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &SourceError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return nil, &SourceError{URL: url, StatusCode: resp.StatusCode}
	}

	// One extra byte tells a body of exactly MaxBodyBytes from a longer one.
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, &SourceError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(data) > MaxBodyBytes {
		return nil, &SourceError{URL: url, Err: fmt.Errorf("read body: %w (%d bytes)", ErrBodyTooLarge, MaxBodyBytes)}
	}

	// Unmarshal rejects trailing data after the object.
	var body payload
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &SourceError{URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}

	return decodeNumbers(body.Numbers), nil
}

// decodeNumbers returns the whole numbers held in raw. The result is empty
// when the field is absent, null or not a list of numbers. Single elements
// that are fractional or outside the int64 range are skipped.
func decodeNumbers(raw json.RawMessage) []int64 {
	if len(raw) == 0 {
		return []int64{}
	}
	var values []json.Number
	if err := json.Unmarshal(raw, &values); err != nil {
		return []int64{}
	}

	numbers := make([]int64, 0, len(values))
	for _, v := range values {
		if n, ok := wholeNumber(v); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// wholeNumber converts v when it denotes an integer that fits in int64,
// whatever its notation (2, 2.0, 2e0).
func wholeNumber(v json.Number) (int64, bool) {
	if n, err := v.Int64(); err == nil {
		return n, true
	}
	f, _, err := big.ParseFloat(v.String(), 10, 256, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return 0, false
	}
	n, acc := f.Int64()
	return n, acc == big.Exact
}
