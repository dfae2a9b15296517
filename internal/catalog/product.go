package catalog

// Product is a single catalog entry. Products are immutable once loaded;
// the only writer is the admin management flow, which round-trips through
// the API rather than mutating local state.
type Product struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Support     string  `json:"support,omitempty"`
	Category    string  `json:"category"`
}
