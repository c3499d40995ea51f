package model

// Product is a dummyjson catalog entry.
type Product struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand,omitempty"`
	Price              float64 `json:"price"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Thumbnail          string  `json:"thumbnail"`
}

// ProductPage is the envelope dummyjson wraps product lists in.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
