// Package dishes implements the searchable dish listing of one category.
// The state shape and messages are shared with the favorites screen, which
// differs only in the effects it issues.
package dishes

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/uistate"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// Route identifies the category listing screen.
const Route = "dishes"

// State is the listing screen state.
type State struct {
	Category    string                  `json:"category"`
	Title       string                  `json:"title"`
	Input       string                  `json:"input"`
	IsSearch    bool                    `json:"is_search"`
	Suggestions map[string]int          `json:"suggestions,omitzero"`
	List        uistate.UI[[]dish.Item] `json:"list"`
}

// InitialState returns a fresh listing for category.
func InitialState(category, title string) State {
	return State{Category: category, Title: title}
}

// InitialEffects returns the effects run when the listing becomes active.
func InitialEffects(category string) []Eff {
	return []Eff{FindDishes{Category: category}}
}

// Msg is a message handled by listing screens.
type Msg interface{ isDishesMsg() }

type (
	// SearchInput updates the search text.
	SearchInput struct{ Input string }
	// ShowDishes delivers the listed dishes.
	ShowDishes struct{ Dishes []dish.Item }
	// SearchSubmit searches for Query.
	SearchSubmit struct{ Query string }
	// UpdateSuggestionResult asks for suggestions matching Query.
	UpdateSuggestionResult struct{ Query string }
	// ShowSuggestion delivers word suggestions with their match counts.
	ShowSuggestion struct{ Suggestions map[string]int }
	// SuggestionSelect picks a suggestion and searches for it.
	SuggestionSelect struct{ Suggestion string }
	// SearchToggle flips search mode.
	SearchToggle struct{}
	// ConnectionFailed marks the list as failed.
	ConnectionFailed struct{}
	// ShowLoading marks the list as loading.
	ShowLoading struct{}
)

func (SearchInput) isDishesMsg()            {}
func (ShowDishes) isDishesMsg()             {}
func (SearchSubmit) isDishesMsg()           {}
func (UpdateSuggestionResult) isDishesMsg() {}
func (ShowSuggestion) isDishesMsg()         {}
func (SuggestionSelect) isDishesMsg()       {}
func (SearchToggle) isDishesMsg()           {}
func (ConnectionFailed) isDishesMsg()       {}
func (ShowLoading) isDishesMsg()            {}

// Eff is an effect requested by the category listing.
type Eff interface{ isDishesEff() }

type (
	// FindDishes streams every dish of Category.
	FindDishes struct{ Category string }
	// SearchDishes streams the dishes of Category matching Query.
	SearchDishes struct {
		Category string
		Query    string
	}
	// FindSuggestions streams word suggestions for Query within Category.
	FindSuggestions struct {
		Category string
		Query    string
	}
)

func (FindDishes) isDishesEff()      {}
func (SearchDishes) isDishesEff()    {}
func (FindSuggestions) isDishesEff() {}

// Effects builds the effects a listing screen issues. Listings that share
// this reducer supply their own constructors.
type Effects[E any] interface {
	FindDishes(category string) E
	SearchDishes(category, query string) E
	FindSuggestions(category, query string) E
}

type categoryEffects struct{}

func (categoryEffects) FindDishes(category string) Eff { return FindDishes{Category: category} }

func (categoryEffects) SearchDishes(category, query string) Eff {
	return SearchDishes{Category: category, Query: query}
}

func (categoryEffects) FindSuggestions(category, query string) Eff {
	return FindSuggestions{Category: category, Query: query}
}

// Reduce applies msg to a category listing.
func Reduce(s State, msg Msg) (State, []Eff) {
	return ReduceWith[Eff](s, msg, categoryEffects{})
}

// ReduceWith applies msg to s, building effects through fx.
func ReduceWith[E any](s State, msg Msg, fx Effects[E]) (State, []E) {
	switch m := msg.(type) {
	case SearchInput:
		s.Input = m.Input
		return s, nil

	case SearchSubmit:
		s.List = uistate.NewLoading[[]dish.Item]()
		return s, []E{fx.SearchDishes(s.Category, m.Query)}

	case ConnectionFailed:
		s.List = uistate.NewError[[]dish.Item]()
		return s, nil

	case ShowLoading:
		s.List = uistate.NewLoading[[]dish.Item]()
		return s, nil

	case UpdateSuggestionResult:
		return s, []E{fx.FindSuggestions(s.Category, m.Query)}

	case ShowSuggestion:
		s.Suggestions = m.Suggestions
		return s, nil

	case SuggestionSelect:
		s.Suggestions = nil
		s.Input = m.Suggestion
		return s, []E{fx.SearchDishes(s.Category, m.Suggestion)}

	case ShowDishes:
		s.List = uistate.FromList(m.Dishes)
		s.Suggestions = nil
		return s, nil

	case SearchToggle:
		switch {
		case s.Input != "" && s.IsSearch:
			s.Input = ""
			s.Suggestions = nil
			return s, []E{fx.FindDishes(s.Category)}
		case s.Input == "" && !s.IsSearch:
			s.IsSearch = true
			return s, nil
		default:
			s.IsSearch = false
			s.Suggestions = nil
			return s, nil
		}

	default:
		return s, nil
	}
}
