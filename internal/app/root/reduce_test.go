package root_test

import (
	"reflect"
	"testing"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/app/uistate"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	domaindish "github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

func navigate(t *testing.T, s root.RootState, cmds ...root.NavCmd) root.RootState {
	t.Helper()
	for _, cmd := range cmds {
		s, _ = root.Reduce(s, root.Navigate{Cmd: cmd})
	}
	return s
}

func forwardCommands() map[string]root.NavCmd {
	return map[string]root.NavCmd{
		"to home":      root.To{Route: home.Route},
		"to menu":      root.To{Route: menu.Route},
		"to favorites": root.To{Route: favorites.Route},
		"to cart":      root.ToCart{},
		"to dish":      root.ToDishItem{ID: "7", Title: "Soup"},
		"to category":  root.ToCategory{ID: "c1", Title: "Soups"},
	}
}

func countTerminate(effs []root.Eff, route string) int {
	n := 0
	for _, e := range effs {
		if term, ok := e.(root.Terminate); ok {
			if term.Route != route {
				return -1
			}
			n++
		}
	}
	return n
}

func TestReduce_ForwardNavigationPushesAndTerminatesOnce(t *testing.T) {
	t.Parallel()

	starts := map[string]root.RootState{
		"initial": root.InitialState(),
		"deep": navigate(t, root.InitialState(),
			root.To{Route: menu.Route}, root.ToCategory{ID: "c1", Title: "Soups"}, root.ToDishItem{ID: "1", Title: "Pie"}),
		"on dish": navigate(t, root.InitialState(), root.ToDishItem{ID: "9", Title: "Tea"}),
	}

	for startName, start := range starts {
		for cmdName, cmd := range forwardCommands() {
			t.Run(startName+"/"+cmdName, func(t *testing.T) {
				t.Parallel()

				got, effs := root.Reduce(start, root.Navigate{Cmd: cmd})

				if len(got.Backstack) != len(start.Backstack)+1 {
					t.Errorf("len(Backstack) = %d, want %d", len(got.Backstack), len(start.Backstack)+1)
				}
				if n := countTerminate(effs, start.CurrentRoute); n != 1 {
					t.Errorf("Terminate(%q) count = %d, want exactly 1 in %v", start.CurrentRoute, n, effs)
				}
				if !reflect.DeepEqual(got.Backstack[len(got.Backstack)-1], start.Current()) {
					t.Errorf("top of backstack = %+v, want previous screen %+v", got.Backstack[len(got.Backstack)-1], start.Current())
				}
			})
		}
	}
}

func TestReduce_ForwardNavigationStartsFresh(t *testing.T) {
	t.Parallel()

	s := navigate(t, root.InitialState(), root.ToDishItem{ID: "7", Title: "Soup"})
	s, _ = root.Reduce(s, root.DishMsg{Msg: dish.IncrementCount{}})
	s = navigate(t, s, root.ToDishItem{ID: "8", Title: "Salad"})

	got, ok := s.Current().(root.DishScreen)
	if !ok {
		t.Fatalf("Current() = %T, want root.DishScreen", s.Current())
	}
	want := dish.InitialState("8", "Salad")
	if !reflect.DeepEqual(got.State, want) {
		t.Errorf("dish state = %+v, want fresh %+v", got.State, want)
	}
}

func TestReduce_ForwardNavigationInitialEffects(t *testing.T) {
	t.Parallel()

	_, effs := root.Reduce(root.InitialState(), root.Navigate{Cmd: root.ToCategory{ID: "c1", Title: "Soups"}})

	want := []root.Eff{
		root.DishesEff{Eff: dishes.FindDishes{Category: "c1"}},
		root.Terminate{Route: home.Route},
	}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("effects = %v, want %v", effs, want)
	}
}

func TestReduce_BackOnEmptyStackFinishes(t *testing.T) {
	t.Parallel()

	start := root.InitialState()
	got, effs := root.Reduce(start, root.Navigate{Cmd: root.Back{}})

	if !reflect.DeepEqual(got.Screens, start.Screens) {
		t.Errorf("Screens changed on Back with empty backstack")
	}
	if got.CurrentRoute != start.CurrentRoute {
		t.Errorf("CurrentRoute = %q, want %q", got.CurrentRoute, start.CurrentRoute)
	}
	want := []root.Eff{root.Cmd{Command: root.Finish}, root.Terminate{Route: home.Route}}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("effects = %v, want %v", effs, want)
	}
}

func TestReduce_BackRestoresPushedScreen(t *testing.T) {
	t.Parallel()

	s := navigate(t, root.InitialState(), root.To{Route: menu.Route})
	s, _ = root.Reduce(s, root.MenuMsg{Msg: menu.ShowMenu{Categories: []category.Item{
		{ID: "a", Title: "Drinks"},
		{ID: "b", Title: "Tea", ParentID: "a"},
	}}})
	s, _ = root.Reduce(s, root.MenuMsg{Msg: menu.ClickCategory{ID: "a", Title: "Drinks"}})
	before := s.Current()

	s = navigate(t, s, root.ToCart{})
	got, effs := root.Reduce(s, root.Navigate{Cmd: root.Back{}})

	if got.CurrentRoute != menu.Route {
		t.Errorf("CurrentRoute = %q, want %q", got.CurrentRoute, menu.Route)
	}
	if !reflect.DeepEqual(got.Current(), before) {
		t.Errorf("restored screen = %+v, want %+v", got.Current(), before)
	}
	if len(got.Backstack) != 1 {
		t.Errorf("len(Backstack) = %d, want 1", len(got.Backstack))
	}
	want := []root.Eff{root.MenuEff{Eff: menu.FindCategories{}}, root.Terminate{Route: cart.Route}}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("effects = %v, want %v", effs, want)
	}
}

func TestReduce_HomeDishBack(t *testing.T) {
	t.Parallel()

	s := navigate(t, root.InitialState(), root.ToDishItem{ID: "7", Title: "Soup"})
	s, _ = root.Reduce(s, root.DishMsg{Msg: dish.IncrementCount{}})
	got := navigate(t, s, root.Back{})

	if got.CurrentRoute != home.Route {
		t.Errorf("CurrentRoute = %q, want %q", got.CurrentRoute, home.Route)
	}
	if len(got.Backstack) != 0 {
		t.Errorf("Backstack = %v, want empty", got.Backstack)
	}
	d, ok := got.Screens[dish.Route].(root.DishScreen)
	if !ok {
		t.Fatalf("Screens[dish] = %T, want root.DishScreen", got.Screens[dish.Route])
	}
	if d.State.ID != "7" || d.State.Count != 2 {
		t.Errorf("dish state = %+v, want id 7 with count 2", d.State)
	}
	if d.State.Content.Kind != uistate.Loading {
		t.Errorf("Content.Kind = %v, want loading", d.State.Content.Kind)
	}
}

func TestReduce_NavigationLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	start := navigate(t, root.InitialState(), root.To{Route: menu.Route}, root.ToCart{})
	screens := make(map[string]root.ScreenState, len(start.Screens))
	for k, v := range start.Screens {
		screens[k] = v
	}
	backstack := append([]root.ScreenState(nil), start.Backstack...)

	navigate(t, start, root.ToDishItem{ID: "1", Title: "Pie"}, root.Back{}, root.Back{}, root.To{Route: favorites.Route})

	if !reflect.DeepEqual(start.Screens, screens) {
		t.Error("Screens of the input state were modified")
	}
	if !reflect.DeepEqual(start.Backstack, backstack) {
		t.Error("Backstack of the input state was modified")
	}
}

func TestReduce_UnknownRoutePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Reduce(To{nowhere}) did not panic")
		}
	}()
	root.Reduce(root.InitialState(), root.Navigate{Cmd: root.To{Route: "nowhere"}})
}

func TestCurrent_MissingScreenPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Current() did not panic for a route without screen")
		}
	}()
	s := root.InitialState()
	s.CurrentRoute = "nowhere"
	s.Current()
}

func TestReduce_MismatchedFeatureMessageIsDropped(t *testing.T) {
	t.Parallel()

	onMenu := navigate(t, root.InitialState(), root.To{Route: menu.Route})
	onCart := navigate(t, root.InitialState(), root.ToCart{})

	tests := []struct {
		name  string
		state root.RootState
		msg   root.Msg
	}{
		{name: "dish message on menu", state: onMenu, msg: root.DishMsg{Msg: dish.IncrementCount{}}},
		{name: "dishes message on menu", state: onMenu, msg: root.DishesMsg{Msg: dishes.SearchToggle{}}},
		{name: "home message on cart", state: onCart, msg: root.HomeMsg{Msg: home.ShowBest{}}},
		{name: "menu message on cart", state: onCart, msg: root.MenuMsg{Msg: menu.PopCategory{}}},
		{name: "cart message on menu", state: onMenu, msg: root.CartMsg{Msg: cart.ShowConfirm{DishID: "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if root.Accepts(tt.state, tt.msg) {
				t.Errorf("Accepts() = true, want false")
			}
			got, effs := root.Reduce(tt.state, tt.msg)
			if !reflect.DeepEqual(got, tt.state) {
				t.Errorf("state changed for mismatched message")
			}
			if len(effs) != 0 {
				t.Errorf("effects = %v, want none", effs)
			}
		})
	}
}

func TestReduce_DishesMessagesServeFavorites(t *testing.T) {
	t.Parallel()

	s := navigate(t, root.InitialState(), root.To{Route: favorites.Route})
	s, _ = root.Reduce(s, root.DishesMsg{Msg: dishes.SearchToggle{}})
	s, _ = root.Reduce(s, root.DishesMsg{Msg: dishes.SearchInput{Input: "so"}})
	got, effs := root.Reduce(s, root.DishesMsg{Msg: dishes.SearchToggle{}})

	if _, ok := got.Current().(root.FavoritesScreen); !ok {
		t.Fatalf("Current() = %T, want root.FavoritesScreen", got.Current())
	}
	want := []root.Eff{root.FavoriteEff{Eff: favorites.FindDishes{}}}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("effects = %v, want %v", effs, want)
	}
}

// Favorites and category listings share the DishesMsg tag, so a listing
// result lands on whichever of the two screens is active.
func TestReduce_SharedDishesTagReachesCategoryListing(t *testing.T) {
	t.Parallel()

	items := []domaindish.Item{{ID: "7", Title: "Soup"}}
	s := navigate(t, root.InitialState(), root.ToCategory{ID: "c1", Title: "Soups"})
	s, effs := root.Reduce(s, root.DishesMsg{Msg: dishes.ShowDishes{Dishes: items}})

	screen, ok := s.Current().(root.DishesScreen)
	if !ok {
		t.Fatalf("Current() = %T, want root.DishesScreen", s.Current())
	}
	if want := uistate.FromList(items); !reflect.DeepEqual(screen.State.List, want) {
		t.Errorf("List = %v, want %v", screen.State.List, want)
	}
	if len(effs) != 0 {
		t.Errorf("effects = %v, want none", effs)
	}

	s, _ = root.Reduce(s, root.DishesMsg{Msg: dishes.SearchToggle{}})
	s, _ = root.Reduce(s, root.DishesMsg{Msg: dishes.SearchInput{Input: "so"}})
	_, effs = root.Reduce(s, root.DishesMsg{Msg: dishes.SearchToggle{}})
	want := []root.Eff{root.DishesEff{Eff: dishes.FindDishes{Category: "c1"}}}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("effects = %v, want %v", effs, want)
	}
}

func TestReduce_GlobalMessages(t *testing.T) {
	t.Parallel()

	onDish := navigate(t, root.InitialState(), root.ToDishItem{ID: "7", Title: "Soup"})

	tests := []struct {
		name string
		msg  root.Msg
		want []root.Eff
	}{
		{
			name: "toggle like",
			msg:  root.ToggleLike{DishID: "7", IsFavorite: true},
			want: []root.Eff{root.ToggleLikeEff{DishID: "7", IsFavorite: true}},
		},
		{
			name: "add to cart",
			msg:  root.AddToCart{DishID: "7", Title: "Soup"},
			want: []root.Eff{root.AddToCartEff{DishID: "7", Title: "Soup"}},
		},
		{
			name: "remove from cart",
			msg:  root.RemoveFromCart{DishID: "7", Title: "Soup"},
			want: []root.Eff{root.RemoveFromCartEff{DishID: "7", Title: "Soup"}},
		},
		{
			name: "click dish",
			msg:  root.ClickDish{DishID: "3", Title: "Pie"},
			want: []root.Eff{root.Nav{Cmd: root.ToDishItem{ID: "3", Title: "Pie"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, effs := root.Reduce(onDish, tt.msg)
			if !reflect.DeepEqual(got, onDish) {
				t.Errorf("state changed for global message %T", tt.msg)
			}
			if !reflect.DeepEqual(effs, tt.want) {
				t.Errorf("effects = %v, want %v", effs, tt.want)
			}
		})
	}
}

func TestReduce_UpdateCartCount(t *testing.T) {
	t.Parallel()

	got, effs := root.Reduce(root.InitialState(), root.UpdateCartCount{Count: 3})
	if got.CartCount != 3 {
		t.Errorf("CartCount = %d, want 3", got.CartCount)
	}
	if len(effs) != 0 {
		t.Errorf("effects = %v, want none", effs)
	}
}

func TestReduce_FeatureNavigationIsLifted(t *testing.T) {
	t.Parallel()

	onMenu := navigate(t, root.InitialState(), root.To{Route: menu.Route})
	onMenu, _ = root.Reduce(onMenu, root.MenuMsg{Msg: menu.ShowMenu{Categories: []category.Item{{ID: "c1", Title: "Soups"}}}})
	_, effs := root.Reduce(onMenu, root.MenuMsg{Msg: menu.ClickCategory{ID: "c1", Title: "Soups"}})
	want := []root.Eff{root.Nav{Cmd: root.ToCategory{ID: "c1", Title: "Soups"}}}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("menu effects = %v, want %v", effs, want)
	}

	onCart := navigate(t, root.InitialState(), root.ToCart{})
	_, effs = root.Reduce(onCart, root.CartMsg{Msg: cart.ClickOnDish{DishID: "7", Title: "Soup"}})
	want = []root.Eff{root.Nav{Cmd: root.ToDishItem{ID: "7", Title: "Soup"}}}
	if !reflect.DeepEqual(effs, want) {
		t.Errorf("cart effects = %v, want %v", effs, want)
	}
}

func TestInitialEffects(t *testing.T) {
	t.Parallel()

	want := []root.Eff{
		root.SyncEntity{},
		root.SyncCounter{},
		root.HomeEff{Eff: home.SyncRecommended{}},
		root.HomeEff{Eff: home.FindBest{}},
		root.HomeEff{Eff: home.FindPopular{}},
	}
	if got := root.InitialEffects(root.InitialState()); !reflect.DeepEqual(got, want) {
		t.Errorf("InitialEffects() = %v, want %v", got, want)
	}
}

func TestScreenTitles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen root.ScreenState
		want   string
	}{
		{screen: root.HomeScreen{}, want: "Home"},
		{screen: root.MenuScreen{}, want: "Menu"},
		{screen: root.CartScreen{}, want: "Cart"},
		{screen: root.FavoritesScreen{}, want: "Favorites"},
		{screen: root.DishScreen{State: dish.InitialState("7", "Soup")}, want: "Soup"},
		{screen: root.DishesScreen{State: dishes.InitialState("c1", "Soups")}, want: "Soups"},
	}

	for _, tt := range tests {
		t.Run(tt.screen.Route(), func(t *testing.T) {
			t.Parallel()

			if got := tt.screen.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
