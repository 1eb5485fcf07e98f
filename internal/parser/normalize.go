package parser

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/maltedev/flipkart-scraper/internal/models"
)

var (
	digitRunPattern = regexp.MustCompile(`[0-9][0-9,]*`)
	ratingPattern   = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?`)
)

// ParsePrice strips the currency symbol and thousands separators and
// parses the remaining digits as whole rupees. Indian digit grouping
// ("1,49,900") is handled. Returns ErrMalformedPrice when the text
// carries no digit run at all.
func ParsePrice(text string) (int, error) {
	m := digitRunPattern.FindString(text)
	if m == "" {
		return 0, ErrMalformedPrice
	}
	value, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, ErrMalformedPrice
	}
	return value, nil
}

// ParseRating parses a leading decimal and range-checks it against the
// five-star scale. "4.3★" is accepted, "six" and "5.8" are not.
func ParseRating(text string) (float64, error) {
	m := ratingPattern.FindString(strings.TrimSpace(text))
	if m == "" {
		return 0, ErrMalformedRating
	}
	value, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, ErrMalformedRating
	}
	if value < 0 || value > 5 {
		return 0, ErrMalformedRating
	}
	return value, nil
}

// ParseCount parses counts like "1,234 Ratings"; trailing words are
// ignored, the leading digit run is what counts.
func ParseCount(text string) (int, error) {
	m := digitRunPattern.FindString(text)
	if m == "" {
		return 0, ErrMalformedCount
	}
	value, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, ErrMalformedCount
	}
	return value, nil
}

// ParseShareURL normalizes a candidate share link. Only absolute
// http(s) URLs pass; anything else is ErrMalformedURL.
func ParseShareURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrMalformedURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrMalformedURL
	}
	return u.String(), nil
}

// DetectAvailability maps the presence of a sold-out marker to an
// availability value. Ambiguous markup deliberately defaults to
// InStock; absence of a marker is not proof the product ships.
func DetectAvailability(soldOut bool) models.Availability {
	if soldOut {
		return models.OutOfStock
	}
	return models.InStock
}
