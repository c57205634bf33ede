package delivery

import (
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// ToDomainDish converts a downstream DishDTO to a domain Dish. An old price
// that is missing or not a number becomes zero.
func ToDomainDish(dto *DishDTO) dish.Dish {
	oldPrice, err := strconv.Atoi(strings.TrimSpace(dto.OldPrice))
	if err != nil {
		oldPrice = 0
	}
	return dish.Dish{
		ID:          dto.ID,
		Title:       dto.Name,
		Description: dto.Description,
		Image:       dto.Image,
		OldPrice:    oldPrice,
		Price:       dto.Price,
		Rating:      dto.Rating,
		Likes:       dto.Likes,
		Category:    dto.Category,
	}
}

// ToDomainDishList converts dishes, skipping the inactive ones.
func ToDomainDishList(dtos []DishDTO) []dish.Dish {
	out := make([]dish.Dish, 0, len(dtos))
	for i := range dtos {
		if !dtos[i].Active {
			continue
		}
		out = append(out, ToDomainDish(&dtos[i]))
	}
	return out
}

// ToDomainCategoryList converts categories, skipping the inactive ones.
// Subcategories without an icon inherit their parent's.
func ToDomainCategoryList(dtos []CategoryDTO) []category.Item {
	icons := make(map[string]string, len(dtos))
	for _, c := range dtos {
		icons[c.CategoryID] = c.Icon
	}

	out := make([]category.Item, 0, len(dtos))
	for _, c := range dtos {
		if !c.Active {
			continue
		}
		icon := c.Icon
		if icon == "" && c.Parent != "" {
			icon = icons[c.Parent]
		}
		out = append(out, category.Item{
			ID:       c.CategoryID,
			Title:    c.Name,
			Order:    c.Order,
			Icon:     icon,
			ParentID: c.Parent,
		})
	}
	return out
}

// ToDomainReview converts a downstream ReviewDTO to a domain Review.
func ToDomainReview(dto *ReviewDTO) dish.Review {
	return dish.Review{
		Name:    dto.Author,
		Date:    time.UnixMilli(dto.Date).UTC(),
		Rating:  dto.Rating,
		Message: dto.Text,
	}
}

// ToDomainReviewList converts a page of reviews. Every review is kept so
// that the page length tells the caller whether more pages follow.
func ToDomainReviewList(dtos []ReviewDTO) []dish.Review {
	out := make([]dish.Review, 0, len(dtos))
	for i := range dtos {
		out = append(out, ToDomainReview(&dtos[i]))
	}
	return out
}

// ToReviewRequest converts a domain NewReview to the downstream request.
func ToReviewRequest(r *dish.NewReview) ReviewRequestDTO {
	return ReviewRequestDTO{Rating: r.Rating, Text: strings.TrimSpace(r.Text)}
}
