package upstream

import (
	"context"
	"net/http"

	"farmstand/internal/structs"
)

func (c *client) ListReviews(ctx context.Context, productID string) ([]structs.Review, error) {
	var reviews []structs.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/"+productID, "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *client) CreateReview(ctx context.Context, token string, req structs.CreateReview) (structs.Review, error) {
	var review structs.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", token, req, &review); err != nil {
		return structs.Review{}, err
	}
	return review, nil
}
