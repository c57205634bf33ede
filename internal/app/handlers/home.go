package handlers

import (
	"context"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Home executes the home screen effects.
type Home struct {
	runner
	repo ports.DishesRepository
}

// NewHome creates the home screen handler.
func NewHome(repo ports.DishesRepository, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Home {
	return &Home{runner: newRunner(home.Route, notify, metrics, logger), repo: repo}
}

// Handle starts the task for eff.
func (h *Home) Handle(eff home.Eff, commit Commit) {
	switch eff.(type) {
	case home.FindBest:
		h.launch("find_best", func(ctx context.Context) error {
			return collect(ctx, h.repo.FindBest(ctx), commit, func(d []dish.Item) root.Msg {
				return root.HomeMsg{Msg: home.ShowBest{Dishes: d}}
			})
		})
	case home.FindPopular:
		h.launch("find_popular", func(ctx context.Context) error {
			return collect(ctx, h.repo.FindPopular(ctx), commit, func(d []dish.Item) root.Msg {
				return root.HomeMsg{Msg: home.ShowPopular{Dishes: d}}
			})
		})
	case home.SyncRecommended:
		h.launch("sync_recommended", func(ctx context.Context) error {
			return h.syncRecommended(ctx, commit)
		})
	}
}

// syncRecommended shows the locally known recommended dishes while the
// missing ones are fetched. The first result of the subscription decides
// which ids are missing; every distinct result is shown.
func (h *Home) syncRecommended(ctx context.Context, commit Commit) error {
	ids, err := h.repo.Recommended(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		commit(root.HomeMsg{Msg: home.ShowRecommended{Dishes: []dish.Item{}}})
		return nil
	}

	var (
		prev    []dish.Item
		started bool
	)
	for items, err := range h.repo.FindRecommended(ctx, ids) {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !started {
			started = true
			if missing := missingIDs(ids, items); len(missing) > 0 {
				h.launch("sync_recommended_fetch", func(ctx context.Context) error {
					_, err := h.repo.SyncRecommended(ctx, missing)
					return err
				})
			}
		} else if slices.Equal(prev, items) {
			continue
		}
		prev = items
		commit(root.HomeMsg{Msg: home.ShowRecommended{Dishes: items}})
	}
	return nil
}

func missingIDs(ids []string, known []dish.Item) []string {
	have := make(map[string]bool, len(known))
	for _, it := range known {
		have[it.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
