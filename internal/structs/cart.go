package structs

// CartLine is one product-and-quantity entry. Product is a snapshot taken
// when the line was first added, not re-fetched afterwards.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// CartState is the persisted cart record. Lines keep insertion order and
// hold at most one entry per product.
type CartState struct {
	Lines []CartLine `json:"lines"`
}

type CartView struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int64      `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

// FarmerGroup is a derived view: the cart lines belonging to one farmer
// with their subtotal. Never persisted.
type FarmerGroup struct {
	Farmer FarmerRef  `json:"farmer"`
	Items  []CartLine `json:"items"`
	Total  float64    `json:"total"`
}

type AddCartItem struct {
	Product  Product `json:"product" binding:"required"`
	Quantity int64   `json:"quantity" binding:"required,gt=0"`
}

type PatchCartItem struct {
	Quantity int64 `json:"quantity"`
}
