package order

// LineItemInput is an unvalidated order line as supplied by a caller: the web
// front-end, the voice agent's function call, or webhook-extracted entities.
// ItemRef (or Name, when ItemRef is absent) is resolved against the menu
// catalog; Price is only trusted when resolution fails.
type LineItemInput struct {
	ItemRef  string  `json:"itemRef,omitempty"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Quantity int     `json:"quantity"`
}

type SubmitOrderRequest struct {
	Items               []LineItemInput `json:"items"`
	OrderType           string          `json:"orderType"`
	CustomerName        string          `json:"customerName"`
	CustomerPhone       string          `json:"customerPhone"`
	CustomerAddress     string          `json:"customerAddress"`
	SpecialInstructions string          `json:"specialInstructions"`
}

type CreateOrderRequest struct {
	Items               []LineItemInput `json:"items"`
	OrderType           string          `json:"orderType"`
	CustomerName        string          `json:"customerName"`
	CustomerPhone       string          `json:"customerPhone"`
	CustomerAddress     string          `json:"customerAddress"`
	SpecialInstructions string          `json:"specialInstructions"`
}

type calculateTotalRequest struct {
	Items *[]LineItemInput `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}
