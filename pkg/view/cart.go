package view

// QuantityOption is one entry of the per-line quantity selector.
type QuantityOption struct {
	Value    int  `json:"value"`
	Selected bool `json:"selected"`
}

type CartLine struct {
	ProductID        string           `json:"product_id"`
	Title            string           `json:"title"`
	Qty              int              `json:"quantity"`
	UnitPrice        string           `json:"unit_price"`
	LineTotal        string           `json:"line_total"`
	ImageURL         string           `json:"image_url"`
	FallbackImageURL string           `json:"fallback_image_url"`
	Options          []QuantityOption `json:"options"`
}

// CartSidebar is the render model of the cart sidebar.
type CartSidebar struct {
	Items    []CartLine `json:"items"`
	Empty    bool       `json:"empty"`
	Skipped  int        `json:"skipped"`
	Count    int        `json:"count"`
	Subtotal string     `json:"subtotal"`

	// SubtotalCents is the subtotal rounded to cents, for templates that
	// need a number.
	SubtotalCents int64 `json:"subtotal_cents"`
}
