// Package delivery implements the Anti-Corruption Layer translators for the
// delivery API's dish, category and review resources.
package delivery

// DishDTO matches the downstream Dish schema. Prices are whole currency
// units.
type DishDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	OldPrice      string  `json:"oldPrice"`
	Price         int     `json:"price"`
	Rating        float64 `json:"rating"`
	Likes         int     `json:"likes"`
	Category      string  `json:"category"`
	CommentsCount int     `json:"commentsCount"`
	Active        bool    `json:"active"`
	CreatedAt     int64   `json:"createdAt"`
	UpdatedAt     int64   `json:"updatedAt"`
}

// CategoryDTO matches the downstream Category schema. Parent is empty for
// top-level categories.
type CategoryDTO struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
	Icon       string `json:"icon"`
	Parent     string `json:"parent"`
	Active     bool   `json:"active"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

// ReviewDTO matches the downstream Review schema. Date is milliseconds
// since the Unix epoch.
type ReviewDTO struct {
	DishID string `json:"dishId"`
	Author string `json:"author"`
	Date   int64  `json:"date"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

// ReviewRequestDTO matches the downstream ReviewRequest schema.
type ReviewRequestDTO struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}
