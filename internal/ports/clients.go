package ports

import (
	"context"

	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// DeliveryClient defines the client port for the remote delivery API.
// Implemented by the ACL adapter; called by the repositories.
type DeliveryClient interface {
	// ListDishes returns one page of the dish catalogue.
	ListDishes(ctx context.Context, offset, limit int) ([]dish.Dish, error)

	// GetDish returns a single dish by ID.
	// Returns domain.ErrNotFound if the dish does not exist.
	GetDish(ctx context.Context, id string) (*dish.Dish, error)

	// Recommended returns the IDs of the dishes recommended on the home screen.
	Recommended(ctx context.Context) ([]string, error)

	// ListCategories returns the whole category tree.
	ListCategories(ctx context.Context) ([]category.Item, error)

	// ListReviews returns one page of the reviews of a dish.
	ListReviews(ctx context.Context, dishID string, offset, limit int) ([]dish.Review, error)

	// SendReview submits a review and returns it as stored by the API.
	// Returns domain.ErrValidation if the review is rejected.
	SendReview(ctx context.Context, review dish.NewReview) (*dish.Review, error)
}
