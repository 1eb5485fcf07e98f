package models

// Availability reports whether a product can currently be ordered.
// Ambiguous markup defaults to InStock; see parser.DetectAvailability.
type Availability string

const (
	InStock    Availability = "IN_STOCK"
	OutOfStock Availability = "OUT_OF_STOCK"
)

// Price holds rupee amounts. OriginalPrice is nil when the product is
// not discounted.
type Price struct {
	CurrentPrice  int  `json:"current_price"`
	OriginalPrice *int `json:"original_price,omitempty"`
}

type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type Seller struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// Offer is a single promotion listed on a product page. Category is
// typically "Bank Offer", "Exchange Offer", "No Cost EMI" etc. and may
// be empty when the markup only carries a description.
type Offer struct {
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
}

type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecSection groups specification rows under a section title such as
// "General" or "Display Features". Sections and rows keep document order.
type SpecSection struct {
	Title string `json:"title"`
	Specs []Spec `json:"specs"`
}

// ProductDetails is one extracted product page.
type ProductDetails struct {
	Name           string        `json:"name"`
	ProductID      string        `json:"product_id,omitempty"`
	Price          Price         `json:"price"`
	Rating         *Rating       `json:"rating,omitempty"`
	Availability   Availability  `json:"availability"`
	Assured        bool          `json:"assured"`
	ShareURL       string        `json:"share_url"`
	Seller         *Seller       `json:"seller,omitempty"`
	Thumbnails     []string      `json:"thumbnails"`
	Highlights     []string      `json:"highlights"`
	Offers         []Offer       `json:"offers"`
	Specifications []SpecSection `json:"specifications"`
}

func NewProductDetails() *ProductDetails {
	return &ProductDetails{
		Availability:   InStock,
		Thumbnails:     make([]string, 0),
		Highlights:     make([]string, 0),
		Offers:         make([]Offer, 0),
		Specifications: make([]SpecSection, 0),
	}
}

func (p *Price) IsValid() bool {
	if p.CurrentPrice < 0 {
		return false
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.CurrentPrice {
		return false
	}
	return true
}

func (r *Rating) IsValid() bool {
	return r.Value >= 0 && r.Value <= 5
}

func (p *ProductDetails) Validate() []string {
	var errs []string

	if p.Name == "" {
		errs = append(errs, "name is required")
	}
	if !p.Price.IsValid() {
		errs = append(errs, "invalid price")
	}
	if p.Rating != nil && !p.Rating.IsValid() {
		errs = append(errs, "rating out of range")
	}

	return errs
}
