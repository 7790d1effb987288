package domain

import "time"

// OrderLineItem is a single ordered item embedded inside an Order. Lines that
// resolved against the menu catalog carry the catalog id and price; lines that
// did not keep whatever the caller supplied.
type OrderLineItem struct {
	ItemID   string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	OrderID             string          `json:"orderId"`
	CallID              string          `json:"callId,omitempty"`
	Items               []OrderLineItem `json:"items"`
	Total               float64         `json:"total"`
	OrderType           string          `json:"orderType"`
	CustomerName        string          `json:"customerName"`
	CustomerPhone       string          `json:"customerPhone"`
	CustomerAddress     string          `json:"customerAddress,omitempty"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	Status              string          `json:"status"`
	Source              string          `json:"source,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           *time.Time      `json:"updatedAt,omitempty"`
	EstimatedReady      *time.Time      `json:"estimatedReady,omitempty"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

const (
	OrderSourceVoice = "voice"
	OrderSourceWeb   = "web"
)
