package response

import (
	"time"

	"textile-store/internal/data/entity"
)

// PlaceOrderResponse mirrors the frontend contract: the generated order id
// plus the deep link it opens for the WhatsApp handoff.
type PlaceOrderResponse struct {
	OrderID     int64  `json:"orderId"`
	WhatsAppURL string `json:"whatsappURL"`
}

type OrderResponse struct {
	OrderID     int64              `json:"order_id"`
	Status      entity.OrderStatus `json:"order_status"`
	CreatedAt   time.Time          `json:"created_at"`
	ProductID   int64              `json:"product_id"`
	ProductName string             `json:"product_name,omitempty"`
	Quantity    int                `json:"quantity"`
	NoOfEnds    int                `json:"no_of_ends"`
	CreelType   string             `json:"creel_type"`
	CreelPitch  string             `json:"creel_pitch"`
	BobinLength string             `json:"bobin_length"`
}

func OrderSummaryToResponse(s *entity.OrderSummary) OrderResponse {
	return OrderResponse{
		OrderID:     s.OrderID,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		NoOfEnds:    s.NoOfEnds,
		CreelType:   s.CreelType,
		CreelPitch:  s.CreelPitch,
		BobinLength: s.BobinLength,
	}
}

type DashboardResponse struct {
	TotalUsers     int64                        `json:"total_users"`
	TotalProducts  int64                        `json:"total_products"`
	OrdersByStatus map[entity.OrderStatus]int64 `json:"orders_by_status"`
}
