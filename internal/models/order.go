package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInDelivery OrderStatus = "in_delivery"
	StatusDelivered  OrderStatus = "delivered"
	StatusFailed     OrderStatus = "failed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInDelivery, StatusDelivered, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// CanTransition enforces the order lifecycle:
// pending -> in_delivery -> delivered, with failed reachable from any
// non-terminal state.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	switch next {
	case StatusInDelivery:
		return s == StatusPending
	case StatusDelivered:
		return s == StatusInDelivery
	case StatusFailed:
		return s == StatusPending || s == StatusInDelivery
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodCard PaymentMethod = "card"
)

// Order is a single delivery. Address, calories and preferences are copied
// from the customer at creation time; later profile edits do not touch
// existing orders. For auto-generated orders CreatedAt is the intended
// delivery date, not the wall-clock time the scheduler ran.
type Order struct {
	ID              string        `json:"id"               gorm:"primary_key;type:uuid"`
	OrderNumber     int64         `json:"order_number"     gorm:"unique_index"`
	CustomerID      string        `json:"customer_id"      gorm:"type:uuid;index" validate:"required"`
	DeliveryAddress string        `json:"delivery_address" validate:"required"`
	DeliveryTime    time.Time     `json:"delivery_time"`
	Quantity        int           `json:"quantity"         validate:"gte=1"`
	Calories        int           `json:"calories"`
	SpecialFeatures string        `json:"special_features"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	IsPrepaid       bool          `json:"is_prepaid"`
	OrderStatus     OrderStatus   `json:"order_status"`
	CourierID       string        `json:"courier_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	IsAutoOrder     bool          `json:"is_auto_order"`
}
