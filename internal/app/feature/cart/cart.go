// Package cart implements the cart screen.
package cart

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/uistate"
	domain "github.com/jsamuelsen11/delivery-core/internal/domain/cart"
)

// Route identifies the cart screen.
const Route = "cart"

// Title is the cart screen title.
const Title = "Cart"

// ConfirmDialog is the remove-item confirmation. It is hidden when Visible is
// false.
type ConfirmDialog struct {
	Visible bool   `json:"visible"`
	DishID  string `json:"dish_id,omitempty"`
	Title   string `json:"title,omitempty"`
}

// State is the cart screen state.
type State struct {
	ConfirmDialog ConfirmDialog             `json:"confirm_dialog"`
	List          uistate.UI[[]domain.Item] `json:"list"`
}

// InitialState returns the state every forward visit starts from.
func InitialState() State { return State{} }

// InitialEffects returns the effects run when the screen becomes active.
func InitialEffects() []Eff { return []Eff{LoadCart{}} }

// Msg is a message handled by the cart screen.
type Msg interface{ isCartMsg() }

type (
	// DecrementCount removes one unit of a dish.
	DecrementCount struct{ DishID string }
	// IncrementCount adds one unit of a dish.
	IncrementCount struct{ DishID string }
	// RemoveFromCart drops the whole line and closes the dialog.
	RemoveFromCart struct {
		DishID string
		Title  string
	}
	// ShowConfirm opens the remove confirmation for a dish.
	ShowConfirm struct {
		DishID string
		Title  string
	}
	// HideConfirm closes the remove confirmation.
	HideConfirm struct{}
	// SendOrder places the order.
	SendOrder struct{ Order domain.Order }
	// ClickOnDish opens the dish detail screen.
	ClickOnDish struct {
		DishID string
		Title  string
	}
	// ShowCart delivers the cart contents.
	ShowCart struct{ Items []domain.Item }
)

func (DecrementCount) isCartMsg() {}
func (IncrementCount) isCartMsg() {}
func (RemoveFromCart) isCartMsg() {}
func (ShowConfirm) isCartMsg()    {}
func (HideConfirm) isCartMsg()    {}
func (SendOrder) isCartMsg()      {}
func (ClickOnDish) isCartMsg()    {}
func (ShowCart) isCartMsg()       {}

// Eff is an effect requested by the cart screen.
type Eff interface{ isCartEff() }

type (
	// LoadCart streams the cart contents.
	LoadCart struct{}
	// DecrementItem removes one unit of a dish from storage.
	DecrementItem struct{ DishID string }
	// IncrementItem adds one unit of a dish to storage.
	IncrementItem struct{ DishID string }
	// RemoveItem deletes a cart line from storage.
	RemoveItem struct{ DishID string }
	// SendOrderEff clears the cart and reports the placed order.
	SendOrderEff struct{ Order domain.Order }
	// OpenDish asks for navigation to the dish detail screen.
	OpenDish struct {
		DishID string
		Title  string
	}
)

func (LoadCart) isCartEff()      {}
func (DecrementItem) isCartEff() {}
func (IncrementItem) isCartEff() {}
func (RemoveItem) isCartEff()    {}
func (SendOrderEff) isCartEff()  {}
func (OpenDish) isCartEff()      {}

// Reduce applies msg to s.
func Reduce(s State, msg Msg) (State, []Eff) {
	switch m := msg.(type) {
	case DecrementCount:
		return s, []Eff{DecrementItem{DishID: m.DishID}}
	case IncrementCount:
		return s, []Eff{IncrementItem{DishID: m.DishID}}
	case RemoveFromCart:
		s.ConfirmDialog = ConfirmDialog{}
		return s, []Eff{RemoveItem{DishID: m.DishID}}
	case ShowConfirm:
		s.ConfirmDialog = ConfirmDialog{Visible: true, DishID: m.DishID, Title: m.Title}
		return s, nil
	case HideConfirm:
		s.ConfirmDialog = ConfirmDialog{}
		return s, nil
	case SendOrder:
		return s, []Eff{SendOrderEff(m)}
	case ClickOnDish:
		return s, []Eff{OpenDish(m)}
	case ShowCart:
		s.List = uistate.FromList(m.Items)
		return s, nil
	default:
		return s, nil
	}
}
