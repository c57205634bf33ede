// Package dish implements the dish detail screen: content, reviews, the
// review dialog and the add-to-cart counter.
package dish

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/uistate"
	domain "github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// Route identifies the dish detail screen.
const Route = "dish"

// State is the detail screen state. Count is the quantity to add to the cart
// and never drops below 1.
type State struct {
	ID             string                      `json:"id"`
	Title          string                      `json:"title"`
	IsReviewDialog bool                        `json:"is_review_dialog"`
	Reviews        uistate.UI[[]domain.Review] `json:"reviews"`
	Content        uistate.UI[domain.Dish]     `json:"content"`
	Count          int                         `json:"count"`
}

// InitialState returns a fresh detail screen for the given dish.
func InitialState(id, title string) State {
	return State{ID: id, Title: title, Count: 1}
}

// InitialEffects returns the effects run when the detail screen becomes
// active.
func InitialEffects(id string) []Eff {
	return []Eff{LoadDish{DishID: id}, LoadReviews{DishID: id}}
}

// Msg is a message handled by the detail screen.
type Msg interface{ isDishMsg() }

type (
	// IncrementCount raises the quantity by one.
	IncrementCount struct{}
	// DecrementCount lowers the quantity by one, floored at 1.
	DecrementCount struct{}
	// ShowReviewDialog opens the review dialog.
	ShowReviewDialog struct{}
	// HideReviewDialog closes the review dialog.
	HideReviewDialog struct{}
	// SendReview submits a review.
	SendReview struct {
		DishID string
		Rating int
		Review string
	}
	// ShowDish delivers the dish content.
	ShowDish struct{ Dish domain.Dish }
	// AddToCart adds Count units of the dish to the cart.
	AddToCart struct {
		ID    string
		Count int
	}
	// ShowReviews delivers the dish reviews.
	ShowReviews struct{ Reviews []domain.Review }
)

func (IncrementCount) isDishMsg()   {}
func (DecrementCount) isDishMsg()   {}
func (ShowReviewDialog) isDishMsg() {}
func (HideReviewDialog) isDishMsg() {}
func (SendReview) isDishMsg()       {}
func (ShowDish) isDishMsg()         {}
func (AddToCart) isDishMsg()        {}
func (ShowReviews) isDishMsg()      {}

// Eff is an effect requested by the detail screen.
type Eff interface{ isDishEff() }

type (
	// LoadDish streams the dish content.
	LoadDish struct{ DishID string }
	// LoadReviews fetches every review page.
	LoadReviews struct{ DishID string }
	// AddToCartEff stores Count units in the cart and refreshes the counter.
	AddToCartEff struct {
		ID    string
		Count int
	}
	// SendReviewEff submits the review and reloads the review list.
	SendReviewEff struct {
		ID     string
		Rating int
		Review string
	}
)

func (LoadDish) isDishEff()      {}
func (LoadReviews) isDishEff()   {}
func (AddToCartEff) isDishEff()  {}
func (SendReviewEff) isDishEff() {}

// Reduce applies msg to s.
func Reduce(s State, msg Msg) (State, []Eff) {
	switch m := msg.(type) {
	case DecrementCount:
		if s.Count > 1 {
			s.Count--
		}
		return s, nil

	case IncrementCount:
		s.Count++
		return s, nil

	case SendReview:
		current := []domain.Review{}
		if s.Reviews.Kind == uistate.Value {
			current = s.Reviews.Data
		}
		s.IsReviewDialog = false
		s.Reviews = uistate.Pending(current)
		return s, []Eff{SendReviewEff{ID: m.DishID, Rating: m.Rating, Review: m.Review}}

	case AddToCart:
		s.Count = 1
		return s, []Eff{AddToCartEff{ID: m.ID, Count: m.Count}}

	case ShowReviews:
		s.Reviews = uistate.FromList(m.Reviews)
		return s, nil

	case ShowDish:
		s.Content = uistate.Of(m.Dish)
		return s, nil

	case ShowReviewDialog:
		s.IsReviewDialog = true
		return s, nil

	case HideReviewDialog:
		s.IsReviewDialog = false
		return s, nil

	default:
		return s, nil
	}
}
