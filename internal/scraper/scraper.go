package scraper

import (
	"context"
	"errors"
)

var ErrEmptyQuery = errors.New("search query is empty")

// Fetcher supplies raw markup for a URL. The HTTP client in
// internal/fetch is the production implementation; tests substitute
// their own.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	BuildSearchURL(query string) string
}
