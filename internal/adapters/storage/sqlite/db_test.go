package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/domain"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

func openTest(t *testing.T) *DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seed(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	err := db.ReplaceCategories(ctx, []category.Item{
		{ID: "pizza", Title: "Pizza", Order: 1},
		{ID: "drinks", Title: "Drinks", Order: 2},
		{ID: "cold", Title: "Cold drinks", Order: 3, ParentID: "drinks"},
	})
	if err != nil {
		t.Fatalf("ReplaceCategories() error = %v", err)
	}
	err = db.UpsertDishes(ctx, []dish.Dish{
		{ID: "d1", Title: "Margherita", Price: 500, OldPrice: 600, Rating: 4.8, Likes: 3, Category: "pizza"},
		{ID: "d2", Title: "Pepperoni", Price: 550, Rating: 4.1, Likes: 9, Category: "pizza"},
		{ID: "d3", Title: "Lemonade", Price: 150, Likes: 1, Category: "cold"},
		{ID: "d4", Title: "Tea", Price: 100, Category: "drinks"},
	})
	if err != nil {
		t.Fatalf("UpsertDishes() error = %v", err)
	}
}

func ids(items []dish.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOpen_MigratesAndPings(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
	if db.Name() != "sqlite" {
		t.Errorf("Name() = %q, want %q", db.Name(), "sqlite")
	}
	n, err := db.CountDishes(context.Background())
	if err != nil || n != 0 {
		t.Errorf("CountDishes() = %d, %v; want 0, nil", n, err)
	}
}

func TestDishQueries(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)
	ctx := context.Background()

	tests := []struct {
		name  string
		query func() ([]dish.Item, error)
		want  []string
	}{
		{name: "best by rating", query: func() ([]dish.Item, error) { return db.Best(ctx) }, want: []string{"d1", "d2"}},
		{name: "popular by likes", query: func() ([]dish.Item, error) { return db.Popular(ctx) }, want: []string{"d2", "d1", "d3"}},
		{name: "by ids", query: func() ([]dish.Item, error) { return db.DishesByIDs(ctx, []string{"d4", "d1", "nope"}) }, want: []string{"d1", "d4"}},
		{name: "no ids", query: func() ([]dish.Item, error) { return db.DishesByIDs(ctx, nil) }, want: []string{}},
		{name: "category", query: func() ([]dish.Item, error) { return db.CategoryDishes(ctx, "pizza", "") }, want: []string{"d1", "d2"}},
		{name: "category with children", query: func() ([]dish.Item, error) { return db.CategoryDishes(ctx, "drinks", "") }, want: []string{"d3", "d4"}},
		{name: "category search", query: func() ([]dish.Item, error) { return db.CategoryDishes(ctx, "pizza", "pep") }, want: []string{"d2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.query()
			if err != nil {
				t.Fatalf("query error = %v", err)
			}
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestDish(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)
	ctx := context.Background()

	if err := db.InsertFavorite(ctx, "d1"); err != nil {
		t.Fatalf("InsertFavorite() error = %v", err)
	}

	got, err := db.Dish(ctx, "d1")
	if err != nil {
		t.Fatalf("Dish() error = %v", err)
	}
	if got.Title != "Margherita" || !got.IsFavorite || got.OldPrice != 600 {
		t.Errorf("Dish() = %+v, want favorite Margherita with old price 600", got)
	}

	_, err = db.Dish(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Dish(missing) error = %v, want ErrNotFound", err)
	}
}

func TestItems_SaleFlag(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)

	got, err := db.DishesByIDs(context.Background(), []string{"d1", "d2"})
	if err != nil {
		t.Fatalf("DishesByIDs() error = %v", err)
	}
	if !got[0].IsSale || got[1].IsSale {
		t.Errorf("IsSale = %v, %v; want true, false", got[0].IsSale, got[1].IsSale)
	}
}

func TestFavorites(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)
	ctx := context.Background()

	for _, id := range []string{"d2", "d3", "d2"} {
		if err := db.InsertFavorite(ctx, id); err != nil {
			t.Fatalf("InsertFavorite(%s) error = %v", id, err)
		}
	}
	got, err := db.FavoriteDishes(ctx, "")
	if err != nil {
		t.Fatalf("FavoriteDishes() error = %v", err)
	}
	if want := []string{"d3", "d2"}; !equalIDs(ids(got), want) {
		t.Errorf("FavoriteDishes() = %v, want %v", ids(got), want)
	}
	for _, it := range got {
		if !it.IsFavorite {
			t.Errorf("%s IsFavorite = false, want true", it.ID)
		}
	}

	if err := db.RemoveFavorite(ctx, "d3"); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	got, _ = db.FavoriteDishes(ctx, "pep")
	if want := []string{"d2"}; !equalIDs(ids(got), want) {
		t.Errorf("FavoriteDishes(pep) = %v, want %v", ids(got), want)
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)
	ctx := context.Background()

	got, err := db.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(got) != 3 || got[0].ID != "pizza" || got[2].ParentID != "drinks" {
		t.Errorf("Categories() = %+v, want pizza, drinks, cold", got)
	}

	if err := db.ReplaceCategories(ctx, []category.Item{{ID: "soup", Title: "Soup"}}); err != nil {
		t.Fatalf("ReplaceCategories() error = %v", err)
	}
	n, err := db.CountCategories(ctx)
	if err != nil || n != 1 {
		t.Errorf("CountCategories() = %d, %v; want 1, nil", n, err)
	}
}

func TestCart(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)
	ctx := context.Background()

	steps := []struct {
		name string
		op   func() error
		want int
	}{
		{name: "add three", op: func() error { return db.AddToCart(ctx, "d1", 3) }, want: 3},
		{name: "add again", op: func() error { return db.AddToCart(ctx, "d1", 1) }, want: 4},
		{name: "add other", op: func() error { return db.AddToCart(ctx, "d2", 1) }, want: 5},
		{name: "decrement", op: func() error { return db.DecrementCart(ctx, "d1") }, want: 4},
		{name: "decrement last unit", op: func() error { return db.DecrementCart(ctx, "d2") }, want: 3},
		{name: "remove", op: func() error { return db.RemoveFromCart(ctx, "d1") }, want: 0},
	}

	// Sequential: each step depends on the previous one.
	for _, s := range steps {
		if err := s.op(); err != nil {
			t.Fatalf("%s: error = %v", s.name, err)
		}
		n, err := db.CartCount(ctx)
		if err != nil {
			t.Fatalf("%s: CartCount() error = %v", s.name, err)
		}
		if n != s.want {
			t.Errorf("%s: CartCount() = %d, want %d", s.name, n, s.want)
		}
	}

	items, err := db.CartItems(ctx)
	if err != nil || len(items) != 0 {
		t.Errorf("CartItems() = %v, %v; want empty", items, err)
	}
}

func TestCartItems_JoinsDish(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)
	ctx := context.Background()

	_ = db.AddToCart(ctx, "d2", 2)
	_ = db.AddToCart(ctx, "d1", 1)

	items, err := db.CartItems(ctx)
	if err != nil {
		t.Fatalf("CartItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(CartItems) = %d, want 2", len(items))
	}
	if items[1].Title != "Pepperoni" || items[1].Count != 2 || items[1].Price != 550 {
		t.Errorf("CartItems()[1] = %+v, want Pepperoni x2 at 550", items[1])
	}

	if err := db.ClearCart(ctx); err != nil {
		t.Fatalf("ClearCart() error = %v", err)
	}
	if n, _ := db.CartCount(ctx); n != 0 {
		t.Errorf("CartCount() after clear = %d, want 0", n)
	}
}

func TestCart_UnknownDish(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	if err := db.AddToCart(context.Background(), "ghost", 1); err == nil {
		t.Error("AddToCart(ghost) error = nil, want foreign key failure")
	}
}

func TestChanges_SignalledOnWrite(t *testing.T) {
	t.Parallel()

	db := openTest(t)
	seed(t, db)

	changed := db.Changes()
	select {
	case <-changed:
		t.Fatal("Changes() closed before any write")
	default:
	}

	if err := db.InsertFavorite(context.Background(), "d1"); err != nil {
		t.Fatalf("InsertFavorite() error = %v", err)
	}
	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Error("Changes() not closed after write")
	}
}

func TestSnapshots(t *testing.T) {
	t.Parallel()

	store := NewSnapshots(openTest(t))
	ctx := context.Background()

	if _, err := store.Load(ctx, "root"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Load() before save error = %v, want ErrNotFound", err)
	}

	for _, data := range []string{`{"v":1}`, `{"v":2}`} {
		if err := store.Save(ctx, "root", []byte(data)); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	got, err := store.Load(ctx, "root")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Load() = %s, want %s", got, `{"v":2}`)
	}
}
