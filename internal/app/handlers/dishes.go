package handlers

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Dishes executes the category listing effects.
type Dishes struct {
	runner
	repo ports.DishesRepository
}

// NewDishes creates the category listing handler.
func NewDishes(repo ports.DishesRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Dishes {
	return &Dishes{runner: newRunner(dishes.Route, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff.
func (h *Dishes) Handle(eff dishes.Eff, commit Commit) {
	switch e := eff.(type) {
	case dishes.FindDishes:
		h.launch("find_dishes", func(ctx context.Context) error {
			commit(showLoading())
			return collect(ctx, h.repo.FindDishesByCategory(ctx, e.Category), commit, showDishes)
		})
	case dishes.SearchDishes:
		h.launch("search_dishes", func(ctx context.Context) error {
			commit(showLoading())
			return collect(ctx, h.repo.SearchDishes(ctx, e.Category, e.Query), commit, showDishes)
		})
	case dishes.FindSuggestions:
		h.launch("find_suggestions", func(ctx context.Context) error {
			return collect(ctx, h.repo.FindSuggestions(ctx, e.Category, e.Query), commit, showSuggestion)
		})
	}
}

// Favorites executes the favorites screen effects. Results are delivered
// as listing messages.
type Favorites struct {
	runner
	repo ports.DishesRepository
}

// NewFavorites creates the favorites handler.
func NewFavorites(repo ports.DishesRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Favorites {
	return &Favorites{runner: newRunner(favorites.Route, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff.
func (h *Favorites) Handle(eff favorites.Eff, commit Commit) {
	switch e := eff.(type) {
	case favorites.FindDishes:
		h.launch("find_favorites", func(ctx context.Context) error {
			commit(showLoading())
			return collect(ctx, h.repo.FindFavoriteDishes(ctx), commit, showDishes)
		})
	case favorites.SearchDishes:
		h.launch("search_favorites", func(ctx context.Context) error {
			commit(showLoading())
			return collect(ctx, h.repo.SearchFavoriteDishes(ctx, e.Query), commit, showDishes)
		})
	case favorites.FindSuggestions:
		h.launch("find_favorite_suggestions", func(ctx context.Context) error {
			return collect(ctx, h.repo.FindFavoriteSuggestions(ctx, e.Query), commit, showSuggestion)
		})
	}
}

func showLoading() root.Msg { return root.DishesMsg{Msg: dishes.ShowLoading{}} }

func showDishes(d []dish.Item) root.Msg { return root.DishesMsg{Msg: dishes.ShowDishes{Dishes: d}} }

func showSuggestion(s map[string]int) root.Msg {
	return root.DishesMsg{Msg: dishes.ShowSuggestion{Suggestions: s}}
}
