package handlers_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/mocks"
)

var (
	pasta = dish.Item{ID: "d1", Title: "Pasta", Price: 450}
	soup  = dish.Item{ID: "d2", Title: "Soup", Price: 300}
)

func TestHome_FindBestAndPopular(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockDishesRepository(t)
	repo.EXPECT().FindBest(mock.Anything).Return(values([]dish.Item{pasta}))
	repo.EXPECT().FindPopular(mock.Anything).Return(values([]dish.Item{soup}))

	h := handlers.NewHome(repo, newNotifier(), nil, testLogger())
	rec := newRecorder()
	h.Handle(home.FindBest{}, rec.commit)
	h.Handle(home.FindPopular{}, rec.commit)
	got := rec.wait(t, 2)
	h.Close()

	want := map[string]bool{}
	for _, m := range got {
		switch m := m.(root.HomeMsg).Msg.(type) {
		case home.ShowBest:
			want["best"] = reflect.DeepEqual(m.Dishes, []dish.Item{pasta})
		case home.ShowPopular:
			want["popular"] = reflect.DeepEqual(m.Dishes, []dish.Item{soup})
		}
	}
	if len(got) != 2 || !want["best"] || !want["popular"] {
		t.Errorf("committed %v, want ShowBest[pasta] and ShowPopular[soup]", got)
	}
}

func TestHome_SyncRecommended(t *testing.T) {
	t.Parallel()

	t.Run("no recommendations", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockDishesRepository(t)
		repo.EXPECT().Recommended(mock.Anything).Return([]string{}, nil)

		h := handlers.NewHome(repo, newNotifier(), nil, testLogger())
		rec := newRecorder()
		h.Handle(home.SyncRecommended{}, rec.commit)

		got := rec.wait(t, 1)[0].(root.HomeMsg).Msg.(home.ShowRecommended)
		if got.Dishes == nil || len(got.Dishes) != 0 {
			t.Errorf("ShowRecommended.Dishes = %#v, want empty non-nil slice", got.Dishes)
		}
		h.Close()
	})

	t.Run("backfills missing and shows distinct results", func(t *testing.T) {
		t.Parallel()

		ids := []string{"d1", "d2"}
		repo := mocks.NewMockDishesRepository(t)
		repo.EXPECT().Recommended(mock.Anything).Return(ids, nil)
		repo.EXPECT().FindRecommended(mock.Anything, ids).
			Return(values([]dish.Item{pasta}, []dish.Item{pasta}, []dish.Item{pasta, soup}))
		repo.EXPECT().SyncRecommended(mock.Anything, []string{"d2"}).Return([]dish.Item{soup}, nil).Once()

		h := handlers.NewHome(repo, newNotifier(), nil, testLogger())
		rec := newRecorder()
		h.Handle(home.SyncRecommended{}, rec.commit)
		got := rec.wait(t, 2)
		h.Close()

		want := []root.Msg{
			root.HomeMsg{Msg: home.ShowRecommended{Dishes: []dish.Item{pasta}}},
			root.HomeMsg{Msg: home.ShowRecommended{Dishes: []dish.Item{pasta, soup}}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("committed %v, want %v", got, want)
		}
	})

	t.Run("nothing missing skips the fetch", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockDishesRepository(t)
		repo.EXPECT().Recommended(mock.Anything).Return([]string{"d1"}, nil)
		repo.EXPECT().FindRecommended(mock.Anything, []string{"d1"}).Return(values([]dish.Item{pasta}))

		h := handlers.NewHome(repo, newNotifier(), nil, testLogger())
		rec := newRecorder()
		h.Handle(home.SyncRecommended{}, rec.commit)
		rec.wait(t, 1)
		h.Close()

		if got := len(rec.all()); got != 1 {
			t.Errorf("committed %d messages, want 1", got)
		}
	})

	t.Run("fetch failure is reported while results keep flowing", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockDishesRepository(t)
		repo.EXPECT().Recommended(mock.Anything).Return([]string{"d1", "d2"}, nil)
		repo.EXPECT().FindRecommended(mock.Anything, mock.Anything).Return(values([]dish.Item{pasta}))
		repo.EXPECT().SyncRecommended(mock.Anything, []string{"d2"}).Return(nil, errors.New("api unavailable"))

		notify := newNotifier()
		h := handlers.NewHome(repo, notify, nil, testLogger())
		rec := newRecorder()
		h.Handle(home.SyncRecommended{}, rec.commit)

		n := nextNotification(t, notify)
		if n.Kind != root.NotificationError || n.Message != "api unavailable" {
			t.Errorf("notification = %+v, want error %q", n, "api unavailable")
		}
		h.Close()
		if got := len(rec.all()); got != 1 {
			t.Errorf("committed %d messages, want 1", got)
		}
	})
}

func TestHome_RecommendedFailureBecomesNotification(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockDishesRepository(t)
	repo.EXPECT().Recommended(mock.Anything).Return(nil, errors.New("timeout"))

	notify := newNotifier()
	h := handlers.NewHome(repo, notify, nil, testLogger())
	h.Handle(home.SyncRecommended{}, newRecorder().commit)

	if n := nextNotification(t, notify); n != root.ErrorNotification("timeout") {
		t.Errorf("notification = %+v, want %+v", n, root.ErrorNotification("timeout"))
	}
	h.Close()
}

func TestHome_TerminateIsSilent(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockDishesRepository(t)
	repo.EXPECT().FindBest(mock.Anything).RunAndReturn(blocking[[]dish.Item])

	notify := newNotifier()
	h := handlers.NewHome(repo, notify, nil, testLogger())
	rec := newRecorder()
	h.Handle(home.FindBest{}, rec.commit)

	h.Terminate()
	h.Close()

	if got := notify.Len(); got != 0 {
		t.Errorf("notifications after Terminate = %d, want 0", got)
	}
	if got := len(rec.all()); got != 0 {
		t.Errorf("committed %d messages after Terminate, want 0", got)
	}
	if got := h.Terminations(); got != 1 {
		t.Errorf("Terminations() = %d, want 1", got)
	}
}

func TestHome_WorksAfterTerminate(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockDishesRepository(t)
	repo.EXPECT().FindBest(mock.Anything).Return(values([]dish.Item{pasta}))

	h := handlers.NewHome(repo, newNotifier(), nil, testLogger())
	h.Terminate()
	rec := newRecorder()
	h.Handle(home.FindBest{}, rec.commit)

	if got := rec.wait(t, 1); len(got) != 1 {
		t.Errorf("committed %d messages, want 1", len(got))
	}
	h.Close()
}
