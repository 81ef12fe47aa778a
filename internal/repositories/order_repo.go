package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetAllByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)

	// Create persists an order and all of its items as one atomic unit:
	// either every row exists afterwards or none do.
	Create(order *models.Order) error

	// CancelPending flips an order from PENDING to CANCELLED in a single
	// conditional update and reports whether the transition happened. Under
	// concurrent cancellation exactly one caller observes true.
	CancelPending(id string) (bool, error)
}
