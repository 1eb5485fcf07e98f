package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://www.flipkart.com"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/118.0"

	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.5"
)

var (
	ErrUnsupportedDomain = errors.New("only flipkart.com URLs are supported")
	ErrProductNotFound   = errors.New("link doesn't correspond to any product")
	ErrHostBlocked       = errors.New("host is down or blocking requests")
)

// Client fetches raw page markup. It is deliberately thin: one GET with
// browser-like headers, no retries, no cookies, no evasion. Extraction
// never sees the network; it only sees the string this client returns.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

type Options struct {
	Timeout    time.Duration
	UserAgent  string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger.With("component", "fetch"),
	}
}

// Fetch downloads the markup behind rawurl. Body markers from the
// upstream error pages are mapped to sentinel errors so callers can
// tell "no such product" from "we are being blocked".
func (c *Client) Fetch(ctx context.Context, rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if !c.allowedHost(u.Hostname()) {
		return "", ErrUnsupportedDomain
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	markup := string(body)
	if strings.Contains(markup, "has been moved or deleted") || strings.Contains(markup, "not right!") {
		return "", ErrProductNotFound
	}
	if resp.StatusCode >= http.StatusInternalServerError || strings.Contains(markup, "Internal Server Error") {
		return "", ErrHostBlocked
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	c.logger.Debug("fetched page", "url", u.String(), "bytes", len(markup))
	return markup, nil
}

// BuildSearchURL builds the search listing URL for a query.
func (c *Client) BuildSearchURL(query string) string {
	return c.baseURL + "/search?q=" + url.QueryEscape(query)
}

func (c *Client) allowedHost(host string) bool {
	if strings.HasSuffix(host, "flipkart.com") {
		return true
	}
	if base, err := url.Parse(c.baseURL); err == nil && base.Hostname() == host {
		return true
	}
	return false
}
