package models

// CartItem is one line of the session cart. Items are unique by ID; adding a
// product that is already in the cart bumps Quantity instead.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // minor currency units
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}
