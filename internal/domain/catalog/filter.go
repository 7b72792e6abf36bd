// internal/domain/catalog/filter.go
package catalog

import (
	"sort"
	"strings"
)

// Sort keys accepted by FilterAndSort.
const (
	SortFeatured  = "featured"
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// Selection describes one page's facet and sort state. An empty facet
// set means the facet applies no filter; it never means "show nothing".
type Selection struct {
	Notes       []string `form:"notes" json:"notes"`
	Categories  []string `form:"categories" json:"categories"`
	Brands      []string `form:"brands" json:"brands"`
	SortBy      string   `form:"sort_by" json:"sort_by"`
	SearchQuery string   `form:"q" json:"search_query"`
}

// IsEmpty reports whether the selection filters nothing and keeps the
// catalog's own ordering.
func (s *Selection) IsEmpty() bool {
	return len(s.Notes) == 0 && len(s.Categories) == 0 && len(s.Brands) == 0 &&
		s.SearchQuery == "" && (s.SortBy == "" || s.SortBy == SortFeatured)
}

// FilterAndSort returns the ordered subset of products matching the
// selection. Filtering is conjunctive across facets and disjunctive
// within each facet; sorting is stable so ties keep catalog order. The
// input slice is never mutated and every surviving product is returned
// unchanged.
func FilterAndSort(products []Product, sel Selection) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(&p, &sel) {
			filtered = append(filtered, p)
		}
	}

	switch sel.SortBy {
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Popularity > filtered[j].Popularity
		})
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	default:
		// "featured" keeps catalog insertion order
	}

	return filtered
}

func matches(p *Product, sel *Selection) bool {
	if len(sel.Notes) > 0 && !intersectsNotes(p.Notes, sel.Notes) {
		return false
	}

	if len(sel.Categories) > 0 && !containsString(sel.Categories, p.Category) {
		return false
	}

	if len(sel.Brands) > 0 && !containsString(sel.Brands, p.Brand) {
		return false
	}

	if sel.SearchQuery != "" && !matchesQuery(p, sel.SearchQuery) {
		return false
	}

	return true
}

// matchesQuery does a case-insensitive substring match against the
// product's searchable text fields; matching any one field qualifies.
func matchesQuery(p *Product, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(strings.Join(p.Notes, " ")), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func intersectsNotes(notes, selected []string) bool {
	for _, n := range notes {
		if containsString(selected, n) {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
