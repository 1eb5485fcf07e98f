package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/maltedev/flipkart-scraper/internal/models"
)

const (
	assuredBadgePattern = "fa_62673a.png"
	shareLinkMarker     = "product.share.pp"
	genericShareURL     = "https://www.flipkart.com/product/p/itme?pid="
)

// FlipkartParser extracts product and search records from Flipkart
// markup. Exactly two product fields are mandatory, name and current
// price; everything else degrades to absent when the markup drifts.
type FlipkartParser struct {
	logger *slog.Logger

	nameSelectors          []string
	currentPriceSelectors  []string
	originalPriceSelectors []string
	ratingSelectors        []string
	ratingCountSelectors   []string
	soldOutSelectors       []string
	assuredSelectors       []string
	sellerSelectors        []string
	cardSelectors          []string
	cardNameSelectors      []string
	cardPriceSelectors     []string
}

func NewFlipkartParser(logger *slog.Logger) *FlipkartParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlipkartParser{
		logger: logger.With("component", "parser"),
		nameSelectors: []string{
			"h1 span.VU-ZEz",
			"span.B_NuCI",
			"h1",
			"title",
		},
		currentPriceSelectors: []string{
			"div.Nx9bqj.CxhGGd",
			"div._30jeq3._16Jk6d",
		},
		originalPriceSelectors: []string{
			"div.yRaY8j",
			"div._3I9_wc._2p6lqe",
		},
		ratingSelectors: []string{
			"div.XQDdHH",
			"div._3LWZlK",
		},
		ratingCountSelectors: []string{
			"span.Wphh3N",
			"span._2_R_DZ",
		},
		soldOutSelectors: []string{
			"div.Z8JjpR",
			"div._16FRp0",
		},
		assuredSelectors: []string{
			"img[src*='" + assuredBadgePattern + "']",
			"img[src*='fa_8b4b59.png']",
		},
		sellerSelectors: []string{
			"#sellerName",
		},
		cardSelectors: []string{
			"div[data-id]",
			"div._1AtVbE div._13oc-S",
		},
		cardNameSelectors: []string{
			"div.KzDlHZ",
			"div._4rR01T",
			"a.s1Q9rs",
			"a.IRpwTa",
			"a.wjcEIp",
		},
		cardPriceSelectors: []string{
			"div.Nx9bqj",
			"div._30jeq3",
		},
	}
}

// ParseProductPage extracts a single product-detail page. It returns a
// MissingFieldError when the name or the current price cannot be
// resolved, ErrMalformedPrice when a price block is present but carries
// no digits, and a partially filled record otherwise.
func (p *FlipkartParser) ParseProductPage(rawHTML string) (*models.ProductDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	details := models.NewProductDetails()

	name, ok := ResolveText(doc.Selection, p.nameSelectors...)
	if !ok {
		return nil, &MissingFieldError{Field: "name"}
	}
	details.Name = name

	soldOut := p.detectSoldOut(doc, rawHTML)
	details.Availability = DetectAvailability(soldOut)

	if err := p.extractPrice(doc, details); err != nil {
		return nil, err
	}

	p.extractRating(doc, details)
	p.extractAssured(doc, details)
	p.extractThumbnails(doc, details)
	if !soldOut {
		p.extractSeller(doc, details)
	}
	p.extractSections(doc, details, !soldOut)
	p.extractShareURL(doc, details)

	return details, nil
}

func (p *FlipkartParser) detectSoldOut(doc *goquery.Document, rawHTML string) bool {
	if _, ok := Resolve(doc.Selection, p.soldOutSelectors...); ok {
		return true
	}
	// body markers survive class-name churn
	return strings.Contains(rawHTML, "currently out of stock") ||
		strings.Contains(rawHTML, "Sold Out") ||
		strings.Contains(rawHTML, "Coming Soon")
}

func (p *FlipkartParser) extractPrice(doc *goquery.Document, details *models.ProductDetails) error {
	if raw, ok := ResolveText(doc.Selection, p.currentPriceSelectors...); ok {
		current, err := ParsePrice(raw)
		if err != nil {
			return err
		}
		details.Price.CurrentPrice = current

		if raw, ok := ResolveText(doc.Selection, p.originalPriceSelectors...); ok {
			if original, err := ParsePrice(raw); err == nil && original > current {
				details.Price.OriginalPrice = &original
			} else if err != nil {
				p.logger.Debug("discarding malformed original price", "text", raw)
			}
		}
		return nil
	}

	// Selector chains missed: fall back to scanning rupee-prefixed
	// blocks in document order. The first is the current price, the
	// second the struck-through original.
	prices := scanRupeePrices(doc.Selection)
	if len(prices) == 0 {
		return &MissingFieldError{Field: "current_price"}
	}
	details.Price.CurrentPrice = prices[0]
	if len(prices) > 1 && prices[1] > prices[0] {
		original := prices[1]
		details.Price.OriginalPrice = &original
	}
	return nil
}

// scanRupeePrices collects up to two distinct rupee amounts from
// ₹-prefixed blocks. Containers holding more than one ₹ are skipped so
// that a wrapper around both prices is not read as a price itself.
func scanRupeePrices(root *goquery.Selection) []int {
	var prices []int
	ResolveAll(root, "div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(text, "₹") {
			return true
		}
		rest := strings.TrimPrefix(text, "₹")
		if strings.Contains(rest, "₹") {
			return true
		}
		value, err := ParsePrice(rest)
		if err != nil {
			return true
		}
		if len(prices) > 0 && prices[len(prices)-1] == value {
			// nested wrapper repeating the same amount
			return true
		}
		prices = append(prices, value)
		return len(prices) < 2
	})
	return prices
}

func (p *FlipkartParser) extractRating(doc *goquery.Document, details *models.ProductDetails) {
	raw, ok := ResolveText(doc.Selection, p.ratingSelectors...)
	if !ok {
		return
	}
	value, err := ParseRating(raw)
	if err != nil {
		// present but malformed: degrade to absent, never abort
		p.logger.Debug("discarding malformed rating", "text", raw)
		return
	}
	rating := &models.Rating{Value: value}
	if raw, ok := ResolveText(doc.Selection, p.ratingCountSelectors...); ok {
		if count, err := ParseCount(raw); err == nil {
			rating.Count = count
		}
	}
	details.Rating = rating
}

func (p *FlipkartParser) extractAssured(doc *goquery.Document, details *models.ProductDetails) {
	_, ok := Resolve(doc.Selection, p.assuredSelectors...)
	details.Assured = ok
}

// extractThumbnails walks unordered lists and keeps the first one that
// carries images but no text, which is how the thumbnail strip differs
// from every other list on the page.
func (p *FlipkartParser) extractThumbnails(doc *goquery.Document, details *models.ProductDetails) {
	ResolveAll(doc.Selection, "ul").EachWithBreak(func(_ int, ul *goquery.Selection) bool {
		if strings.TrimSpace(ul.Text()) != "" {
			return true
		}
		ul.Find("li img").Each(func(_ int, img *goquery.Selection) {
			if src, ok := img.Attr("src"); ok && src != "" {
				details.Thumbnails = append(details.Thumbnails, src)
			}
		})
		return len(details.Thumbnails) == 0
	})
}

func (p *FlipkartParser) extractSeller(doc *goquery.Document, details *models.ProductDetails) {
	s, ok := Resolve(doc.Selection, p.sellerSelectors...)
	if !ok {
		return
	}
	ratingText := strings.TrimSpace(s.Find("div").First().Text())

	name := leadingText(s.Find("span").First())
	if name == "" {
		name = ratingText
	}
	if name == "" {
		return
	}

	seller := &models.Seller{Name: name}
	if value, err := ParseRating(ratingText); err == nil {
		seller.Rating = &value
	}
	details.Seller = seller
}

// extractSections makes a single pass over the page's divs and fills
// highlights, offers and specifications from the first block whose
// leading text announces the section. Offers are only listed for
// orderable products.
func (p *FlipkartParser) extractSections(doc *goquery.Document, details *models.ProductDetails, inStock bool) {
	ResolveAll(doc.Selection, "div").Each(func(_ int, s *goquery.Selection) {
		text := leadingText(s)
		switch {
		case len(details.Highlights) == 0 && strings.HasPrefix(text, "Highlights"):
			p.extractHighlights(s, details)
		case inStock && len(details.Offers) == 0 && strings.HasPrefix(text, "Available offers"):
			p.extractOffers(s, details)
		case len(details.Specifications) == 0 && strings.HasPrefix(text, "Specifications"):
			p.extractSpecifications(s, details)
		}
	})
}

func (p *FlipkartParser) extractHighlights(section *goquery.Selection, details *models.ProductDetails) {
	list, ok := Resolve(section, "ul")
	if !ok {
		return
	}
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			details.Highlights = append(details.Highlights, text)
		}
	})
}

func (p *FlipkartParser) extractOffers(section *goquery.Selection, details *models.ProductDetails) {
	section.Find("li").Each(func(_ int, li *goquery.Selection) {
		first := li.Find("span").First()
		if first.Length() == 0 {
			return
		}
		if sibling := first.NextFiltered("span"); sibling.Length() > 0 {
			description := strings.TrimSpace(sibling.Text())
			if description == "" {
				return
			}
			details.Offers = append(details.Offers, models.Offer{
				Category:    strings.TrimSpace(first.Text()),
				Description: description,
			})
			return
		}
		if description := strings.TrimSpace(first.Text()); description != "" {
			details.Offers = append(details.Offers, models.Offer{Description: description})
		}
	})
}

func (p *FlipkartParser) extractSpecifications(section *goquery.Selection, details *models.ProductDetails) {
	section.Find("table").Each(func(_ int, table *goquery.Selection) {
		title := leadingText(table.Prev())
		if title == "" {
			return
		}
		spec := models.SpecSection{Title: title, Specs: make([]models.Spec, 0)}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				p.logger.Debug("skipping spec row without key/value pair", "section", title)
				return
			}
			key := strings.TrimSpace(cells.Eq(0).Text())
			value := strings.TrimSpace(cells.Eq(1).Text())
			if key == "" || value == "" {
				p.logger.Debug("skipping spec row with empty cell", "section", title)
				return
			}
			spec.Specs = append(spec.Specs, models.Spec{Key: key, Value: value})
		})
		details.Specifications = append(details.Specifications, spec)
	})
}

// extractShareURL builds the canonical share link: the page's canonical
// <link> wins, then the share link and product id buried in the
// bootstrap state script, then a link derived from the product id.
// When none resolve the field stays empty; callers may substitute the
// request URL.
func (p *FlipkartParser) extractShareURL(doc *goquery.Document, details *models.ProductDetails) {
	if href, ok := ResolveAttr(doc.Selection, "href", `link[rel="canonical"]`); ok {
		if u, err := ParseShareURL(href); err == nil {
			details.ShareURL = u
		} else {
			p.logger.Debug("discarding malformed canonical link", "href", href)
		}
	}

	ResolveAll(doc.Selection, "script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.HasPrefix(strings.TrimSpace(text), "window.__INITIAL_STATE__") {
			return true
		}
		if details.ProductID == "" {
			if _, after, found := strings.Cut(text, `"productId"`); found {
				after = strings.TrimLeft(after, " \t:\"")
				if id, _, found := strings.Cut(after, `"`); found && id != "" {
					details.ProductID = id
				}
			}
		}
		if details.ShareURL == "" {
			details.ShareURL = findShareLink(text)
		}
		return details.ShareURL == "" || details.ProductID == ""
	})

	if details.ShareURL == "" && details.ProductID != "" {
		details.ShareURL = genericShareURL + details.ProductID
	}
}

// findShareLink locates the quoted URL ending in the share-campaign
// marker inside the bootstrap state blob.
func findShareLink(text string) string {
	rest := text
	for {
		idx := strings.Index(rest, shareLinkMarker)
		if idx < 0 {
			return ""
		}
		chunk := rest[:idx+len(shareLinkMarker)]
		if q := strings.LastIndex(chunk, `"`); q >= 0 {
			if u, err := ParseShareURL(chunk[q+1:]); err == nil {
				return u
			}
		}
		rest = rest[idx+len(shareLinkMarker):]
	}
}
