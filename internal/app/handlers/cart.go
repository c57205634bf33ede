package handlers

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	domain "github.com/jsamuelsen11/delivery-core/internal/domain/cart"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Cart executes the cart screen effects.
type Cart struct {
	runner
	repo ports.CartRepository
}

// NewCart creates the cart handler.
func NewCart(repo ports.CartRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Cart {
	return &Cart{runner: newRunner(cart.Route, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff.
func (h *Cart) Handle(eff cart.Eff, commit Commit) {
	switch e := eff.(type) {
	case cart.LoadCart:
		h.launch("load_cart", func(ctx context.Context) error {
			return collect(ctx, h.repo.LoadItems(ctx), commit, func(items []domain.Item) root.Msg {
				return root.CartMsg{Msg: cart.ShowCart{Items: items}}
			})
		})
	case cart.IncrementItem:
		h.launch("increment_item", func(ctx context.Context) error {
			return h.repo.IncrementItem(ctx, e.DishID)
		})
	case cart.DecrementItem:
		h.launch("decrement_item", func(ctx context.Context) error {
			return h.repo.DecrementItem(ctx, e.DishID)
		})
	case cart.RemoveItem:
		h.launch("remove_item", func(ctx context.Context) error {
			return h.repo.RemoveItem(ctx, e.DishID)
		})
	case cart.SendOrderEff:
		h.launch("send_order", func(ctx context.Context) error {
			if err := h.repo.ClearCart(ctx); err != nil {
				return err
			}
			h.notify.Push(root.TextNotification("Order placed"))
			return nil
		})
	}
}
