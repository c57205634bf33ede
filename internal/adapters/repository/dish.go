package repository

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.DishRepository = (*Dish)(nil)

const defaultReviewPageSize = 10

// Dish serves the dish detail screen.
type Dish struct {
	db       *sqlite.DB
	api      ports.DeliveryClient
	pageSize int
	logger   *slog.Logger
}

// NewDish creates the detail repository. Reviews are fetched pageSize at a
// time.
func NewDish(db *sqlite.DB, api ports.DeliveryClient, pageSize int, logger *slog.Logger) *Dish {
	if pageSize <= 0 {
		pageSize = defaultReviewPageSize
	}
	return &Dish{db: db, api: api, pageSize: pageSize, logger: logger}
}

// FindDish watches the cached dish with id.
func (r *Dish) FindDish(ctx context.Context, id string) ports.Stream[dish.Dish] {
	return watch(ctx, r.db, func(ctx context.Context) (dish.Dish, error) {
		return r.db.Dish(ctx, id)
	})
}

// AddToCart adds count units of the dish to the cart.
func (r *Dish) AddToCart(ctx context.Context, id string, count int) error {
	return r.db.AddToCart(ctx, id, count)
}

// CartCount returns the number of dishes in the cart.
func (r *Dish) CartCount(ctx context.Context) (int, error) {
	return r.db.CartCount(ctx)
}

// LoadReviews pages through the reviews until a short page. A failure on
// the first page is returned; a later one ends paging with what was
// loaded so far.
func (r *Dish) LoadReviews(ctx context.Context, dishID string) ([]dish.Review, error) {
	reviews := []dish.Review{}
	for offset := 0; ; offset += r.pageSize {
		page, err := r.api.ListReviews(ctx, dishID, offset, r.pageSize)
		if err != nil {
			if offset == 0 {
				return nil, err
			}
			r.logger.WarnContext(ctx, "review paging stopped early",
				slog.String("dish_id", dishID),
				slog.Int("loaded", len(reviews)),
				slog.String("error", err.Error()),
			)
			return reviews, nil
		}
		reviews = append(reviews, page...)
		if len(page) < r.pageSize {
			return reviews, nil
		}
	}
}

// SendReview posts a review and returns the stored one.
func (r *Dish) SendReview(ctx context.Context, dishID string, rating int, text string) (*dish.Review, error) {
	return r.api.SendReview(ctx, dish.NewReview{DishID: dishID, Rating: rating, Text: text})
}
