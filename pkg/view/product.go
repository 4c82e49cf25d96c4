package view

type ProductCard struct {
	ID               string
	Title            string
	Price            string
	ImageURL         string
	FallbackImageURL string
	InCart           int
}

// StorefrontPage is the product grid plus the optional cart sidebar.
type StorefrontPage struct {
	Title     string
	Loading   bool
	Products  []ProductCard
	CartCount int
	CartOpen  bool
	Cart      CartSidebar
	Flash     *Flash

	// CloseURL is where the close button and the backdrop send the browser.
	CloseURL string
}
