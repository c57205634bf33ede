package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	domain "github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Dish executes the dish detail effects.
type Dish struct {
	runner
	repo ports.DishRepository
}

// NewDish creates the dish detail handler.
func NewDish(repo ports.DishRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Dish {
	return &Dish{runner: newRunner(dish.Route, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff.
func (h *Dish) Handle(eff dish.Eff, commit Commit) {
	switch e := eff.(type) {
	case dish.LoadDish:
		h.launch("load_dish", func(ctx context.Context) error {
			return collect(ctx, h.repo.FindDish(ctx, e.DishID), commit, func(d domain.Dish) root.Msg {
				return root.DishMsg{Msg: dish.ShowDish{Dish: d}}
			})
		})

	case dish.LoadReviews:
		h.launch("load_reviews", func(ctx context.Context) error {
			reviews, err := h.repo.LoadReviews(ctx, e.DishID)
			if err != nil {
				return err
			}
			commit(root.DishMsg{Msg: dish.ShowReviews{Reviews: reviews}})
			return nil
		})

	case dish.AddToCartEff:
		h.launch("add_to_cart", func(ctx context.Context) error {
			if err := h.repo.AddToCart(ctx, e.ID, e.Count); err != nil {
				return err
			}
			count, err := h.repo.CartCount(ctx)
			if err != nil {
				return err
			}
			commit(root.UpdateCartCount{Count: count})
			h.notify.Push(root.TextNotification(fmt.Sprintf("%d items added to cart", e.Count)))
			return nil
		})

	case dish.SendReviewEff:
		h.launch("send_review", func(ctx context.Context) error {
			review, err := h.repo.SendReview(ctx, e.ID, e.Rating, e.Review)
			if err != nil {
				return err
			}
			reviews, err := h.repo.LoadReviews(ctx, e.ID)
			if err != nil {
				return err
			}
			if review != nil && !slices.Contains(reviews, *review) {
				reviews = append(reviews, *review)
			}
			commit(root.DishMsg{Msg: dish.ShowReviews{Reviews: reviews}})
			h.notify.Push(root.TextNotification("Review sent"))
			return nil
		})
	}
}
