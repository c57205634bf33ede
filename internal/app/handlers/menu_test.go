package handlers_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/app/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/mocks"
)

func TestMenu_FindCategories(t *testing.T) {
	t.Parallel()

	tree := []category.Item{{ID: "c1", Title: "Pizza"}, {ID: "c2", Title: "Meat", ParentID: "c1"}}
	repo := mocks.NewMockCategoriesRepository(t)
	repo.EXPECT().FindCategories(mock.Anything).Return(values(tree))

	h := handlers.NewMenu(repo, newNotifier(), nil, testLogger())
	rec := newRecorder()
	h.Handle(menu.FindCategories{}, rec.commit)
	got := rec.wait(t, 1)
	h.Close()

	want := []root.Msg{root.MenuMsg{Msg: menu.ShowMenu{Categories: tree}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("committed %v, want %v", got, want)
	}
	if h.Route() != menu.Route {
		t.Errorf("Route() = %q, want %q", h.Route(), menu.Route)
	}
}
