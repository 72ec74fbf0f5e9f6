package structs

const (
	OrderStatusPending   = "Pending"
	OrderStatusPacked    = "Packed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPacked, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type OrderItem struct {
	Product  string  `json:"product"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrder is the payload submitted per farmer group at checkout.
type CreateOrder struct {
	Farmer      string      `json:"farmer"`
	Products    []OrderItem `json:"products"`
	TotalAmount float64     `json:"totalAmount"`
}

type OrderProduct struct {
	Product  ProductRef `json:"product"`
	Quantity int64      `json:"quantity"`
	Price    float64    `json:"price"`
}

type ProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type CustomerRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	ID          string         `json:"_id"`
	Farmer      FarmerRef      `json:"farmer"`
	Customer    CustomerRef    `json:"customer"`
	Products    []OrderProduct `json:"products"`
	TotalAmount float64        `json:"totalAmount"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"createdAt"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" binding:"required"`
}

// CheckoutResult reports what a checkout run actually did. On failure
// SubmittedFarmers names the groups whose orders already reached the
// backend before the run stopped.
type CheckoutResult struct {
	OrderIDs         []string `json:"order_ids"`
	SubmittedFarmers []string `json:"submitted_farmers,omitempty"`
}
