package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusDelivered OrderStatus = "Delivered"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusCancelled, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is the header row. It is only ever created together with exactly
// one OrderLine inside one transaction.
type Order struct {
	ID        int64       `db:"order_id"`
	UserID    uuid.UUID   `db:"user_id"`
	Status    OrderStatus `db:"order_status"`
	CreatedAt time.Time   `db:"created_at"`
}

// OrderLine carries the product reference and the machine specification
// for one placed order.
type OrderLine struct {
	ID          int64  `db:"order_detail_id"`
	OrderID     int64  `db:"order_id"`
	ProductID   int64  `db:"product_id"`
	Quantity    int    `db:"quantity"`
	NoOfEnds    int    `db:"no_of_ends"`
	CreelType   string `db:"creel_type"`
	CreelPitch  string `db:"creel_pitch"`
	BobinLength string `db:"bobin_length"`
}

// OrderSummary is the header joined with its line and product, as returned
// by the order listings.
type OrderSummary struct {
	OrderID     int64       `db:"order_id"`
	Status      OrderStatus `db:"order_status"`
	CreatedAt   time.Time   `db:"created_at"`
	ProductID   int64       `db:"product_id"`
	ProductName string      `db:"product_name"`
	Quantity    int         `db:"quantity"`
	NoOfEnds    int         `db:"no_of_ends"`
	CreelType   string      `db:"creel_type"`
	CreelPitch  string      `db:"creel_pitch"`
	BobinLength string      `db:"bobin_length"`
}
