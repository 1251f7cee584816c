package dto

type SelectionRequest struct {
	WaveID    string `json:"wave_id" binding:"required,uuid"`
	UnitPrice string `json:"unit_price" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	BuyerID    string             `json:"buyer_id" binding:"required,uuid"`
	EventID    string             `json:"event_id" binding:"required,uuid"`
	Selections []SelectionRequest `json:"selections" binding:"required,min=1,dive"`
}

type CheckoutRequest struct {
	BuyerID string `json:"buyer_id" binding:"required,uuid"`
}
