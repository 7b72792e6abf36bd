// internal/domain/catalog/entity.go
package catalog

// Product is the canonical product record. Pages and domains that only
// need a subset of fields take what they declare; the optional
// descriptive fields are empty for products created through the admin
// form with the minimum required data.
type Product struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	Category   string   `json:"category"`
	Price      int64    `json:"price"` // Price in cents
	Image      string   `json:"image,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	InStock    bool     `json:"in_stock"`
	IsPopular  bool     `json:"is_popular,omitempty"`
	Popularity int      `json:"popularity"` // Sort ordering only

	// Optional descriptive attributes
	Description   string   `json:"description,omitempty"`
	Size          string   `json:"size,omitempty"`
	Concentration string   `json:"concentration,omitempty"`
	TopNotes      []string `json:"top_notes,omitempty"`
	MiddleNotes   []string `json:"middle_notes,omitempty"`
	BaseNotes     []string `json:"base_notes,omitempty"`
	Images        []string `json:"images,omitempty"`
}

// Product categories form a fixed closed set.
const (
	CategoryWomens   = "Women's Fragrances"
	CategoryMens     = "Men's Fragrances"
	CategoryUnisex   = "Unisex"
	CategoryAttar    = "Attar Oils"
	CategoryGiftSets = "Gift Sets"
)

// Categories returns the closed set of valid product categories in
// display order.
func Categories() []string {
	return []string{
		CategoryWomens,
		CategoryMens,
		CategoryUnisex,
		CategoryAttar,
		CategoryGiftSets,
	}
}

// ValidCategory reports whether category is a member of the closed set.
func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// HasNote reports whether the product carries the given scent note.
func (p *Product) HasNote(note string) bool {
	for _, n := range p.Notes {
		if n == note {
			return true
		}
	}
	return false
}

// StockAlert is a back-in-stock notification request for a product that
// was out of stock when a customer asked to be notified.
type StockAlert struct {
	ProductID uint   `json:"product_id"`
	Email     string `json:"email"`
}
