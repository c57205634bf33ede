package handlers

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Menu executes the menu screen effects.
type Menu struct {
	runner
	repo ports.CategoriesRepository
}

// NewMenu creates the menu handler.
func NewMenu(repo ports.CategoriesRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Menu {
	return &Menu{runner: newRunner(menu.Route, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff.
func (h *Menu) Handle(eff menu.Eff, commit Commit) {
	if _, ok := eff.(menu.FindCategories); !ok {
		return
	}
	h.launch("find_categories", func(ctx context.Context) error {
		return collect(ctx, h.repo.FindCategories(ctx), commit, func(c []category.Item) root.Msg {
			return root.MenuMsg{Msg: menu.ShowMenu{Categories: c}}
		})
	})
}
