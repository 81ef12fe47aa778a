package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle states. PENDING is the initial state; the only transition
// this service performs itself is PENDING -> CANCELLED.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Accepted payment methods. The choice is stored with the order; payment
// collection itself happens downstream.
const (
	PaymentMethodPaystack = "PAYSTACK"
	PaymentMethodStripe   = "STRIPE"
	PaymentMethodCOD      = "COD"
)

// Order is a customer order. Amount is fixed at creation time from the item
// price snapshots and is never recomputed.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"type:varchar(36);index"`
	Status          string          `json:"status" gorm:"type:varchar(20);default:PENDING"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	PaymentMethod   string          `json:"payment_method" gorm:"type:varchar(20)"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a single line of an order. Price is the unit price snapshotted
// from the product when the order was placed, independent of later catalog
// price changes.
type OrderItem struct {
	ID               string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID          string          `json:"order_id" gorm:"type:varchar(36);index"`
	ProductVariantID string          `json:"product_variant_id" gorm:"type:varchar(36);index"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderItemDetail is an order item joined with its variant and product for
// display. Product may be nil if the catalog entry has since been removed.
type OrderItemDetail struct {
	OrderItem
	ProductVariant *ProductVariant `json:"product_variant"`
	Product        *Product        `json:"product"`
}

// OrderDetail is an order with display-enriched items.
type OrderDetail struct {
	Order
	Items []OrderItemDetail `json:"items"`
}
