package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/maltedev/flipkart-scraper/internal/models"
)

const flipkartBaseURL = "https://www.flipkart.com"

// ParseSearchPage extracts every usable result card from a search
// listing, in document order. A card missing its name, link or price is
// skipped; one broken card must not void the page. ErrNoResults is
// returned when nothing usable remains.
func (p *FlipkartParser) ParseSearchPage(rawHTML string) (*models.SearchResults, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var cards *goquery.Selection
	for _, sel := range p.cardSelectors {
		if c := ResolveAll(doc.Selection, sel); c.Length() > 0 {
			cards = c
			break
		}
	}
	if cards == nil {
		return nil, ErrNoResults
	}

	results := &models.SearchResults{Results: make([]models.SearchResult, 0, cards.Length())}
	cards.Each(func(i int, card *goquery.Selection) {
		result, ok := p.parseCard(card)
		if !ok {
			p.logger.Debug("skipping unusable search card", "index", i)
			return
		}
		results.Results = append(results.Results, result)
	})

	if len(results.Results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

func (p *FlipkartParser) parseCard(card *goquery.Selection) (models.SearchResult, bool) {
	var result models.SearchResult

	href, ok := ResolveAttr(card, "href", "a")
	if !ok {
		return result, false
	}
	if strings.HasPrefix(href, "/") {
		href = flipkartBaseURL + href
	}
	result.Link = href

	name, ok := ResolveText(card, p.cardNameSelectors...)
	if !ok {
		// older grid layouts carry the name only in the anchor title
		// or the thumbnail alt text
		if name, ok = ResolveAttr(card, "title", "a[title]"); !ok {
			name, ok = ResolveAttr(card, "alt", "img[alt]")
		}
	}
	if !ok {
		return result, false
	}
	result.Name = name

	if raw, found := ResolveText(card, p.cardPriceSelectors...); found {
		current, err := ParsePrice(raw)
		if err != nil {
			return result, false
		}
		result.Price.CurrentPrice = current
		if raw, found := ResolveText(card, p.originalPriceSelectors...); found {
			if original, err := ParsePrice(raw); err == nil && original > current {
				result.Price.OriginalPrice = &original
			}
		}
	} else {
		prices := scanRupeePrices(card)
		if len(prices) == 0 {
			return result, false
		}
		result.Price.CurrentPrice = prices[0]
		if len(prices) > 1 && prices[1] > prices[0] {
			original := prices[1]
			result.Price.OriginalPrice = &original
		}
	}

	if src, ok := ResolveAttr(card, "src", "img"); ok {
		result.Thumbnail = src
	}
	return result, true
}
