// Package cart holds the shopping cart entities.
package cart

// Item is one line of the cart.
type Item struct {
	DishID string `json:"dish_id"`
	Title  string `json:"title"`
	Image  string `json:"image,omitempty"`
	Count  int    `json:"count"`
	Price  int    `json:"price"`
}

// Subtotal returns the line price for the item's count.
func (i Item) Subtotal() int {
	return i.Price * i.Count
}

// Order is a checkout request built from the cart contents.
type Order struct {
	Address string `json:"address,omitempty"`
	Comment string `json:"comment,omitempty"`
	Items   []Item `json:"items"`
}

// Total returns the sum of every line subtotal.
func (o Order) Total() int {
	total := 0
	for _, it := range o.Items {
		total += it.Subtotal()
	}
	return total
}

// Count returns the number of units in items.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Count
	}
	return n
}
