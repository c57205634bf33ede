package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// GlobalRoute names the scope of the effects that outlive every screen.
const GlobalRoute = "root"

// UndoLabel is the action label of the add-to-cart notification.
const UndoLabel = "Undo"

// Global executes the effects that do not belong to a screen. Its scope is
// only cancelled on shutdown.
type Global struct {
	runner
	repo ports.RootRepository
}

// NewGlobal creates the handler for screen-independent effects.
func NewGlobal(repo ports.RootRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Global {
	return &Global{runner: newRunner(GlobalRoute, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff. Effects that are not screen-independent
// are ignored.
func (h *Global) Handle(eff root.Eff, commit Commit) {
	switch e := eff.(type) {
	case root.SyncCounter:
		h.launch("sync_counter", func(ctx context.Context) error {
			return collect(ctx, h.repo.CartCount(ctx), commit, func(n int) root.Msg {
				return root.UpdateCartCount{Count: n}
			})
		})

	case root.SyncEntity:
		h.launch("sync_dishes", func(ctx context.Context) error {
			return backfill(ctx, h.repo.IsEmptyDishes, h.repo.SyncDishes)
		})
		h.launch("sync_categories", func(ctx context.Context) error {
			return backfill(ctx, h.repo.IsEmptyCategories, h.repo.SyncCategories)
		})

	case root.AddToCartEff:
		h.launch("add_dish_to_cart", func(ctx context.Context) error {
			if err := h.repo.AddDishToCart(ctx, e.DishID); err != nil {
				return err
			}
			h.notify.Push(root.ActionNotification(
				fmt.Sprintf("%s added to cart", e.Title),
				UndoLabel,
				root.RemoveFromCart{DishID: e.DishID, Title: e.Title},
			))
			return nil
		})

	case root.RemoveFromCartEff:
		h.launch("remove_dish_from_cart", func(ctx context.Context) error {
			if err := h.repo.RemoveDishFromCart(ctx, e.DishID); err != nil {
				return err
			}
			h.notify.Push(root.TextNotification(fmt.Sprintf("%s removed from cart", e.Title)))
			return nil
		})

	case root.ToggleLikeEff:
		h.launch("toggle_like", func(ctx context.Context) error {
			if e.IsFavorite {
				return h.repo.InsertFavorite(ctx, e.DishID)
			}
			return h.repo.RemoveFavorite(ctx, e.DishID)
		})
	}
}

func backfill(ctx context.Context, isEmpty func(context.Context) (bool, error), sync func(context.Context) error) error {
	empty, err := isEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return sync(ctx)
}
