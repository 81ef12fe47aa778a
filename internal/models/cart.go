package models

import "time"

// CartItem holds a variant a user intends to buy. One row per user+variant.
type CartItem struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID           string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_variant"`
	ProductVariantID string    `json:"product_variant_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_variant"`
	Quantity         int       `json:"quantity" validate:"required,gte=1"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CartItemDetail is a cart item joined with its variant and product.
type CartItemDetail struct {
	CartItem
	ProductVariant *ProductVariant `json:"product_variant"`
	Product        *Product        `json:"product"`
}
