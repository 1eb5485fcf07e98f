package models

// SearchResult is one hit on a search listing page. Name, Link and the
// current price are guaranteed by the parser; Thumbnail may be empty.
type SearchResult struct {
	Name      string `json:"name"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Price     Price  `json:"price"`
}

// SearchResults keeps hits in document order. No deduplication and no
// ranking beyond source order.
type SearchResults struct {
	Query   string         `json:"query,omitempty"`
	Results []SearchResult `json:"results"`
}
