package review

import (
	"context"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/upstream"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Upstream upstream.Client
		Logger   logger.Logger
	}

	Service interface {
		ListByProduct(ctx context.Context, productID string) (structs.ProductReviews, error)
		Create(ctx context.Context, sess structs.Session, req structs.CreateReview) (structs.Review, error)
	}

	service struct {
		upstream upstream.Client
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		upstream: p.Upstream,
		logger:   p.Logger,
	}
}

func (s *service) ListByProduct(ctx context.Context, productID string) (structs.ProductReviews, error) {
	reviews, err := s.upstream.ListReviews(ctx, productID)
	if err != nil {
		s.logger.Error(ctx, "->upstream.ListReviews", zap.Error(err))
		return structs.ProductReviews{}, err
	}

	return structs.ProductReviews{
		Reviews:       reviews,
		AverageRating: averageRating(reviews),
	}, nil
}

func (s *service) Create(ctx context.Context, sess structs.Session, req structs.CreateReview) (structs.Review, error) {
	created, err := s.upstream.CreateReview(ctx, sess.UpstreamToken, req)
	if err != nil {
		s.logger.Error(ctx, "->upstream.CreateReview", zap.Error(err))
		return structs.Review{}, err
	}
	return created, nil
}

func averageRating(reviews []structs.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
