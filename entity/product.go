package entity

// Product is a catalog entry used to synthesize order line items.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// Ref returns the document path of the product in the products collection.
func (p Product) Ref() string { return "products/" + p.ID }
