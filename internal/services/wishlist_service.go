package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// WishlistService handles per-user wishlists.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist returns the products on the user's wishlist.
func (s *WishlistService) GetWishlist(userID string) ([]models.Product, error) {
	return s.wishlistRepo.GetProductsByUser(userID)
}

// AddProduct puts a product on the user's wishlist. Adding an already-listed
// product is a no-op.
func (s *WishlistService) AddProduct(userID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return mapNotFound(err, "product", productID)
	}
	return s.wishlistRepo.Add(userID, productID)
}

// RemoveProduct takes a product off the user's wishlist.
func (s *WishlistService) RemoveProduct(userID, productID string) error {
	return s.wishlistRepo.Remove(userID, productID)
}
