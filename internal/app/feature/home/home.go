// Package home implements the landing screen: recommended, best and popular
// dishes.
package home

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/uistate"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// Route identifies the home screen.
const Route = "home"

// State is the home screen state.
type State struct {
	Recommended uistate.UI[[]dish.Item] `json:"recommended"`
	Best        uistate.UI[[]dish.Item] `json:"best"`
	Popular     uistate.UI[[]dish.Item] `json:"popular"`
}

// InitialState returns the state every forward visit starts from.
func InitialState() State { return State{} }

// InitialEffects returns the effects run when the screen becomes active.
func InitialEffects() []Eff {
	return []Eff{SyncRecommended{}, FindBest{}, FindPopular{}}
}

// Msg is a message handled by the home screen.
type Msg interface{ isHomeMsg() }

// ShowRecommended delivers the recommended dishes.
type ShowRecommended struct{ Dishes []dish.Item }

// ShowBest delivers the best-rated dishes.
type ShowBest struct{ Dishes []dish.Item }

// ShowPopular delivers the most liked dishes.
type ShowPopular struct{ Dishes []dish.Item }

func (ShowRecommended) isHomeMsg() {}
func (ShowBest) isHomeMsg()        {}
func (ShowPopular) isHomeMsg()     {}

// Eff is an effect requested by the home screen.
type Eff interface{ isHomeEff() }

// SyncRecommended fetches the recommended ids, backfills missing dishes and
// streams what is known locally.
type SyncRecommended struct{}

// FindBest streams the best-rated dishes.
type FindBest struct{}

// FindPopular streams the most liked dishes.
type FindPopular struct{}

func (SyncRecommended) isHomeEff() {}
func (FindBest) isHomeEff()        {}
func (FindPopular) isHomeEff()     {}

// Reduce applies msg to s.
func Reduce(s State, msg Msg) (State, []Eff) {
	switch m := msg.(type) {
	case ShowRecommended:
		s.Recommended = uistate.FromList(m.Dishes)
	case ShowBest:
		s.Best = uistate.FromList(m.Dishes)
	case ShowPopular:
		s.Popular = uistate.FromList(m.Dishes)
	}
	return s, nil
}
