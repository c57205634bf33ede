// Package favorites implements the liked-dishes screen. It reuses the
// listing state and messages; its effects carry no category.
package favorites

import "github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"

// Route identifies the favorites screen.
const Route = "favorites"

// Title is the screen's display title.
const Title = "Favorites"

// InitialState returns the state every forward visit starts from.
func InitialState() dishes.State {
	return dishes.State{Title: Title}
}

// InitialEffects returns the effects run when the screen becomes active.
func InitialEffects() []Eff { return []Eff{FindDishes{}} }

// Eff is an effect requested by the favorites screen.
type Eff interface{ isFavoriteEff() }

type (
	// FindDishes streams every liked dish.
	FindDishes struct{}
	// SearchDishes streams liked dishes matching Query.
	SearchDishes struct{ Query string }
	// FindSuggestions streams word suggestions for Query among liked dishes.
	FindSuggestions struct{ Query string }
)

func (FindDishes) isFavoriteEff()      {}
func (SearchDishes) isFavoriteEff()    {}
func (FindSuggestions) isFavoriteEff() {}

type effects struct{}

func (effects) FindDishes(string) Eff { return FindDishes{} }

func (effects) SearchDishes(_, query string) Eff { return SearchDishes{Query: query} }

func (effects) FindSuggestions(_, query string) Eff { return FindSuggestions{Query: query} }

// Reduce applies msg to the favorites listing.
func Reduce(s dishes.State, msg dishes.Msg) (dishes.State, []Eff) {
	return dishes.ReduceWith[Eff](s, msg, effects{})
}
