package view

type OrderItem struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Qty       int    `json:"quantity"`
	PriceEach string `json:"price_each"`
	LineTotal string `json:"line_total"`
}

// Receipt is what a completed checkout shows back.
type Receipt struct {
	OrderID  string      `json:"order_id"`
	Subtotal string      `json:"subtotal"`
	Items    []OrderItem `json:"items"`
}
