package catalog

import "strings"

// PriceBucket is one of the fixed price-range labels used for filtering.
type PriceBucket string

const (
	BucketNone    PriceBucket = ""
	BucketUnder15 PriceBucket = "under-15"
	Bucket15To30  PriceBucket = "15-30"
	Bucket30To50  PriceBucket = "30-50"
	BucketOver50  PriceBucket = "over-50"
)

// Contains reports whether price falls in the bucket's range. BucketNone
// matches everything.
func (b PriceBucket) Contains(price float64) bool {
	switch b {
	case BucketUnder15:
		return price < 15
	case Bucket15To30:
		return price >= 15 && price <= 30
	case Bucket30To50:
		return price > 30 && price <= 50
	case BucketOver50:
		return price > 50
	default:
		return true
	}
}

// FilterState holds the active search/filter predicate set. Filters are
// purely conjunctive: a product must satisfy the text match, the genre
// selection, and the price bucket to be visible. An unset stage passes
// unconditionally.
type FilterState struct {
	Search string
	Genres map[string]struct{}
	Bucket PriceBucket
}

func NewFilterState() *FilterState {
	return &FilterState{Genres: make(map[string]struct{})}
}

// ToggleGenre adds the genre to the selection, or removes it if already
// selected.
func (f *FilterState) ToggleGenre(genre string) {
	if f.Genres == nil {
		f.Genres = make(map[string]struct{})
	}
	if _, ok := f.Genres[genre]; ok {
		delete(f.Genres, genre)
	} else {
		f.Genres[genre] = struct{}{}
	}
}

// Clear resets the search text, genre selection, and price bucket.
func (f *FilterState) Clear() {
	f.Search = ""
	f.Genres = make(map[string]struct{})
	f.Bucket = BucketNone
}

// Active reports whether any filter stage is set.
func (f *FilterState) Active() bool {
	return f.Search != "" || len(f.Genres) > 0 || f.Bucket != BucketNone
}

// Match reports whether the product passes every active filter stage.
func (f *FilterState) Match(p Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Genre), q) {
			return false
		}
	}
	if len(f.Genres) > 0 {
		if _, ok := f.Genres[p.Genre]; !ok {
			return false
		}
	}
	return f.Bucket.Contains(p.Price)
}

// Apply returns the order-preserving subsequence of catalog that passes
// every active filter stage.
func Apply(catalog []Product, f *FilterState) []Product {
	if f == nil || !f.Active() {
		return catalog
	}
	filtered := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
