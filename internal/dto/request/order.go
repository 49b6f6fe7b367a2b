package request

// PlaceOrderRequest carries the product reference and the machine
// specification. The specification values are forwarded to storage as-is.
type PlaceOrderRequest struct {
	ProductID   int64  `json:"product_id" validate:"required,min=1"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	NoOfEnds    int    `json:"no_of_ends" validate:"required"`
	CreelType   string `json:"creel_type" validate:"required"`
	CreelPitch  string `json:"creel_pitch" validate:"required"`
	BobinLength string `json:"bobin_length" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"order_status" validate:"required,oneof=Pending Confirmed Shipped Cancelled Delivered"`
}
