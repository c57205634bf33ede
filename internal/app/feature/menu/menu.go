// Package menu implements the category tree screen.
package menu

import "github.com/jsamuelsen11/delivery-core/internal/domain/category"

// Route identifies the menu screen.
const Route = "menu"

// State is the menu screen state. ParentID selects the tree level shown; an
// empty ParentID shows top-level categories.
type State struct {
	Categories []category.Item `json:"categories"`
	ParentID   string          `json:"parent_id,omitempty"`
}

// Parent returns the category whose children are shown.
func (s State) Parent() (category.Item, bool) {
	if s.ParentID == "" {
		return category.Item{}, false
	}
	return category.Find(s.Categories, s.ParentID)
}

// Current returns the categories of the shown tree level. Children inherit
// the parent's icon when it has one.
func (s State) Current() []category.Item {
	items := category.Children(s.Categories, s.ParentID)
	parent, ok := s.Parent()
	if !ok || parent.Icon == "" {
		return items
	}
	for i := range items {
		items[i].Icon = parent.Icon
	}
	return items
}

// InitialState returns the state every forward visit starts from.
func InitialState() State { return State{} }

// InitialEffects returns the effects run when the screen becomes active.
func InitialEffects() []Eff { return []Eff{FindCategories{}} }

// Msg is a message handled by the menu screen.
type Msg interface{ isMenuMsg() }

// ShowMenu delivers the whole category tree.
type ShowMenu struct{ Categories []category.Item }

// ClickCategory opens a category: it descends when the category has
// children and opens the dish listing otherwise.
type ClickCategory struct {
	ID    string
	Title string
}

// PopCategory ascends one tree level.
type PopCategory struct{}

func (ShowMenu) isMenuMsg()      {}
func (ClickCategory) isMenuMsg() {}
func (PopCategory) isMenuMsg()   {}

// Eff is an effect requested by the menu screen.
type Eff interface{ isMenuEff() }

// FindCategories streams the category tree.
type FindCategories struct{}

// OpenCategory asks for navigation to the dish listing of a leaf category.
type OpenCategory struct {
	ID    string
	Title string
}

func (FindCategories) isMenuEff() {}
func (OpenCategory) isMenuEff()   {}

// Reduce applies msg to s.
func Reduce(s State, msg Msg) (State, []Eff) {
	switch m := msg.(type) {
	case ShowMenu:
		s.Categories = m.Categories
		return s, nil
	case ClickCategory:
		if len(category.Children(s.Categories, m.ID)) == 0 {
			return s, []Eff{OpenCategory{ID: m.ID, Title: m.Title}}
		}
		s.ParentID = m.ID
		return s, nil
	case PopCategory:
		parent, _ := s.Parent()
		s.ParentID = parent.ParentID
		return s, nil
	default:
		return s, nil
	}
}
