package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNilClient is returned when a method is called on a nil *Client.
var ErrNilClient = errors.New("client is nil")

// Fetcher loads the full record collection.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchRecords(ctx context.Context) ([]Record, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client reads the record collection from an HTTP endpoint or a local file.
type Client struct {
	source    *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "cardsearch/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for source. Sources without a scheme are treated
// as local file paths. A non-positive timeout uses the default.
func NewClient(source string, timeout time.Duration) (*Client, error) {
	u, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		source: u,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Source returns the resolved source location.
func (c *Client) Source() string {
	if c == nil || c.source == nil {
		return ""
	}
	return c.source.String()
}

// FetchRecords retrieves and decodes the record collection.
func (c *Client) FetchRecords(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, ErrNilClient
	}
	var payload []Record
	if c.source.Scheme == "file" {
		if err := c.readFile(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	}
	if err := c.do(ctx, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("source %s returned status %d", c.source.Redacted(), resp.StatusCode)
	}
	return decode(resp.Body, dest)
}

func (c *Client) readFile(dest any) error {
	file, err := os.Open(c.source.Path)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = file.Close() }()
	return decode(file, dest)
}

func decode(r io.Reader, dest any) error {
	if err := json.NewDecoder(r).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseSource(source string) (*url.URL, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, fmt.Errorf("source is empty")
	}
	if !strings.Contains(trimmed, "://") {
		abs, err := filepath.Abs(trimmed)
		if err != nil {
			return nil, fmt.Errorf("resolve source path %q: %w", source, err)
		}
		return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse source %q: %w", source, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return nil, fmt.Errorf("source %q has no host", source)
		}
	case "file":
		// file://data/x.json would parse "data" as a host and open /x.json.
		if u.Host != "" && u.Host != "localhost" {
			return nil, fmt.Errorf("file source %q has host %q; use file:///abs/path or a plain path", source, u.Host)
		}
		if u.Path == "" {
			return nil, fmt.Errorf("file source %q has no path", source)
		}
		u.Host = ""
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
	u.Fragment = ""
	return u, nil
}
