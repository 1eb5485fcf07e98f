package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maltedev/flipkart-scraper/internal/models"
	"github.com/maltedev/flipkart-scraper/internal/parser"
)

// Service ties the fetch collaborator to the extraction engine.
type Service struct {
	fetcher Fetcher
	parser  parser.Parser
	logger  *slog.Logger
}

func NewService(fetcher Fetcher, p parser.Parser, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher: fetcher,
		parser:  p,
		logger:  logger.With("component", "scraper"),
	}
}

// Product fetches and extracts one product-detail page. When the page
// yields no share link of its own, the request URL stands in for it.
func (s *Service) Product(ctx context.Context, url string) (*models.ProductDetails, error) {
	markup, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product page: %w", err)
	}

	details, err := s.parser.ParseProductPage(markup)
	if err != nil {
		return nil, err
	}
	if details.ShareURL == "" {
		details.ShareURL = url
	}

	s.logger.Info("extracted product",
		"name", details.Name,
		"price", details.Price.CurrentPrice,
		"availability", details.Availability,
	)
	return details, nil
}

// Search fetches and extracts one search-results page for a query.
func (s *Service) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	searchURL := s.fetcher.BuildSearchURL(query)
	markup, err := s.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}

	results, err := s.parser.ParseSearchPage(markup)
	if err != nil {
		return nil, err
	}
	results.Query = query

	s.logger.Info("extracted search results", "query", query, "count", len(results.Results))
	return results, nil
}
