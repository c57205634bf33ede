// Package category holds the menu tree entities.
package category

// Item is one node of the menu tree. Top-level categories have an empty
// ParentID.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
	Icon     string `json:"icon,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
}

// Children returns the categories whose parent is parentID, in input order.
func Children(items []Item, parentID string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ParentID == parentID {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the category with the given id.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
