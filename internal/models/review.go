package models

import "time"

// Review is a user's rating of a product. One review per user+product.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_review_user_product"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_review_user_product"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Content   string    `json:"content" validate:"omitempty,max=2000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewDetail carries the reviewer's public name alongside the review.
type ReviewDetail struct {
	Review
	Username string `json:"username"`
}
