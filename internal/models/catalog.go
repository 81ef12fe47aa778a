package models

import "time"

// Brand is a product manufacturer or label.
type Brand struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category groups products; categories may nest via ParentID.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	ParentID    *string   `json:"parent_id" gorm:"type:varchar(36)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is a catalog entry. Its price is the unit price charged for any of
// its variants at order time.
type Product struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BrandID            *string   `json:"brand_id" gorm:"type:varchar(36);index"`
	CategoryID         *string   `json:"category_id" gorm:"type:varchar(36);index"`
	Name               string    `json:"name" validate:"required,min=3,max=200"`
	Slug               string    `json:"slug" gorm:"uniqueIndex" validate:"required,max=200"`
	Description        string    `json:"description" validate:"omitempty,max=2000"`
	Price              float64   `json:"price" validate:"required,gt=0"`
	ImageURL           string    `json:"image_url" validate:"omitempty,url"`
	DiscountPercentage *int      `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProductVariant is a purchasable SKU-level specialization of a product,
// e.g. a size/color combination.
type ProductVariant struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);index" validate:"required"`
	Color     string    `json:"color" validate:"omitempty,max=50"`
	Size      string    `json:"size" validate:"omitempty,max=50"`
	Stock     int       `json:"stock" validate:"gte=0"`
	SKU       string    `json:"sku" gorm:"uniqueIndex" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
