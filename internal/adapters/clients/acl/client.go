package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/clients/acl/delivery"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/platform/httpclient"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.DeliveryClient = (*DeliveryClient)(nil)

// categoriesLimit is the page size of the category endpoint; the tree is
// always fetched in one request.
const categoriesLimit = 100

// DeliveryClient is the outbound adapter for the delivery API. It implements
// [ports.DeliveryClient]. Payloads are translated by the [delivery]
// subpackage; HTTP errors become domain errors through [TranslateHTTPError].
//
// Circuit breaking, retries, rate limiting, bearer authentication and
// tracing are provided by the underlying [httpclient.Client].
type DeliveryClient struct {
	req *Requester
}

// NewDeliveryClient creates a DeliveryClient. The client's BaseURL points at
// the API root (e.g. "https://delivery-api.example.com/api/v1").
func NewDeliveryClient(client *httpclient.Client, logger *slog.Logger) *DeliveryClient {
	return &DeliveryClient{req: NewRequester(client, logger)}
}

// ListDishes fetches one page from GET /dishes.
func (c *DeliveryClient) ListDishes(ctx context.Context, offset, limit int) ([]dish.Dish, error) {
	var dtos []delivery.DishDTO
	if err := c.req.Do(ctx, http.MethodGet, "/dishes"+page(offset, limit), nil, &dtos); err != nil {
		return nil, err
	}
	return delivery.ToDomainDishList(dtos), nil
}

// GetDish fetches GET /dishes/{id}. Returns domain.ErrNotFound on 404.
func (c *DeliveryClient) GetDish(ctx context.Context, id string) (*dish.Dish, error) {
	var dto delivery.DishDTO
	if err := c.req.Do(ctx, http.MethodGet, "/dishes/"+url.PathEscape(id), nil, &dto); err != nil {
		return nil, err
	}
	out := delivery.ToDomainDish(&dto)
	return &out, nil
}

// Recommended fetches the recommended dish IDs from GET /main/recommend.
func (c *DeliveryClient) Recommended(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.req.Do(ctx, http.MethodGet, "/main/recommend", nil, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ListCategories fetches the category tree from GET /categories.
func (c *DeliveryClient) ListCategories(ctx context.Context) ([]category.Item, error) {
	var dtos []delivery.CategoryDTO
	if err := c.req.Do(ctx, http.MethodGet, "/categories"+page(0, categoriesLimit), nil, &dtos); err != nil {
		return nil, err
	}
	return delivery.ToDomainCategoryList(dtos), nil
}

// ListReviews fetches one page from GET /reviews/{dish}.
func (c *DeliveryClient) ListReviews(ctx context.Context, dishID string, offset, limit int) ([]dish.Review, error) {
	path := "/reviews/" + url.PathEscape(dishID) + page(offset, limit)

	var dtos []delivery.ReviewDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return delivery.ToDomainReviewList(dtos), nil
}

// SendReview validates the review and posts it to POST /reviews/{dish}.
// Returns domain.ErrValidation before any request when it is incomplete.
func (c *DeliveryClient) SendReview(ctx context.Context, review dish.NewReview) (*dish.Review, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}

	var dto delivery.ReviewDTO
	path := "/reviews/" + url.PathEscape(review.DishID)
	if err := c.req.Do(ctx, http.MethodPost, path, delivery.ToReviewRequest(&review), &dto); err != nil {
		return nil, err
	}
	out := delivery.ToDomainReview(&dto)
	return &out, nil
}

func page(offset, limit int) string {
	return fmt.Sprintf("?offset=%d&limit=%d", offset, limit)
}
