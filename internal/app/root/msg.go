package root

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
)

// Msg is an event fed to the root reducer. Feature messages are wrapped in
// the tag of the feature that owns them; the rest are global.
type Msg interface{ isMsg() }

// Feature-tagged messages.
type (
	DishesMsg struct{ Msg dishes.Msg }
	DishMsg   struct{ Msg dish.Msg }
	CartMsg   struct{ Msg cart.Msg }
	HomeMsg   struct{ Msg home.Msg }
	MenuMsg   struct{ Msg menu.Msg }
)

// Navigate runs a navigation command.
type Navigate struct{ Cmd NavCmd }

// UpdateCartCount replaces the cart badge counter.
type UpdateCartCount struct{ Count int }

// ToggleLike stores or removes a favorite.
type ToggleLike struct {
	DishID     string
	IsFavorite bool
}

// AddToCart adds one unit of a dish to the cart.
type AddToCart struct {
	DishID string
	Title  string
}

// RemoveFromCart removes one unit of a dish from the cart.
type RemoveFromCart struct {
	DishID string
	Title  string
}

// ClickDish opens a dish detail screen.
type ClickDish struct {
	DishID string
	Title  string
}

func (DishesMsg) isMsg()       {}
func (DishMsg) isMsg()         {}
func (CartMsg) isMsg()         {}
func (HomeMsg) isMsg()         {}
func (MenuMsg) isMsg()         {}
func (Navigate) isMsg()        {}
func (UpdateCartCount) isMsg() {}
func (ToggleLike) isMsg()      {}
func (AddToCart) isMsg()       {}
func (RemoveFromCart) isMsg()  {}
func (ClickDish) isMsg()       {}

// NavCmd is a navigation command.
type NavCmd interface{ isNavCmd() }

// To opens one of the unparameterized routes: home, menu or favorites.
type To struct{ Route string }

// ToCart opens the cart.
type ToCart struct{}

// ToDishItem opens the detail screen of a dish.
type ToDishItem struct {
	ID    string
	Title string
}

// ToCategory opens the dish listing of a category.
type ToCategory struct {
	ID    string
	Title string
}

// Back returns to the previous screen, or finishes the host when there is
// none.
type Back struct{}

func (To) isNavCmd()         {}
func (ToCart) isNavCmd()     {}
func (ToDishItem) isNavCmd() {}
func (ToCategory) isNavCmd() {}
func (Back) isNavCmd()       {}

// Command is an opaque instruction for the hosting shell.
type Command string

// Finish asks the host to close the application.
const Finish Command = "finish"
