package entities

// Product is a read-only catalog item. Quotes reference it by ID and copy its
// title; the catalog is never mutated by the lifecycle.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Supplier    string   `json:"supplier,omitempty"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

func (p Product) Clone() Product {
	if p.Features != nil {
		features := make([]string, len(p.Features))
		copy(features, p.Features)
		p.Features = features
	}
	return p
}
