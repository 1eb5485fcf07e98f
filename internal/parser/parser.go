package parser

import (
	"github.com/maltedev/flipkart-scraper/internal/models"
)

// Parser turns raw page markup into typed records. Implementations are
// stateless and safe for concurrent use.
type Parser interface {
	ParseProductPage(html string) (*models.ProductDetails, error)
	ParseSearchPage(html string) (*models.SearchResults, error)
}
