package domain

// Product is a single catalog entry. Products are created when the catalog is
// loaded and never mutated afterwards.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ScoredProduct is a catalog entry together with its relevance score for one query
type ScoredProduct struct {
	Product      Product `json:"product"`
	Score        int     `json:"score"`
	BrandHits    int     `json:"brand_hits"`
	OtherHits    int     `json:"other_hits"`
	CategoryHits int     `json:"category_hits"`
}

// CatalogStats summarises the loaded catalog
type CatalogStats struct {
	TotalProducts  int    `json:"total_products"`  // rows in the catalog store
	LoadedProducts int    `json:"loaded_products"` // products in the searchable snapshot
	Version        uint64 `json:"version"`
	Status         string `json:"status"`
}
