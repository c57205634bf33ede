// Package dish holds the catalogue entities shown on the home, listing and
// detail screens.
package dish

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/domain"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Item is the compact representation of a dish used in lists.
type Item struct {
	ID         string `json:"id"`
	Image      string `json:"image,omitempty"`
	Price      int    `json:"price"`
	Title      string `json:"title"`
	IsSale     bool   `json:"is_sale,omitempty"`
	IsFavorite bool   `json:"is_favorite,omitempty"`
}

// Dish is the full representation of a dish shown on its detail screen.
type Dish struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	OldPrice    int     `json:"old_price,omitempty"`
	Price       int     `json:"price"`
	Rating      float64 `json:"rating"`
	Likes       int     `json:"likes"`
	Category    string  `json:"category"`
	IsFavorite  bool    `json:"is_favorite,omitempty"`
}

// Item returns the list representation of d.
func (d *Dish) Item() Item {
	return Item{
		ID:         d.ID,
		Image:      d.Image,
		Price:      d.Price,
		Title:      d.Title,
		IsSale:     d.OldPrice > d.Price,
		IsFavorite: d.IsFavorite,
	}
}

// Review is a customer review attached to a dish.
type Review struct {
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Rating  int       `json:"rating"`
	Message string    `json:"message"`
}

// NewReview is the payload submitted when a customer reviews a dish.
type NewReview struct {
	DishID string
	Rating int
	Text   string
}

// Validate checks that the review can be submitted.
// Returns a *domain.ValidationError with per-field details, or nil.
func (r *NewReview) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.DishID) == "" {
		fields["dish_id"] = domain.MsgRequired
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		fields["rating"] = fmt.Sprintf("must be %d-%d, got %d", MinRating, MaxRating, r.Rating)
	}
	if strings.TrimSpace(r.Text) == "" {
		fields["text"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
