package review

import (
	"context"
	"testing"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUpstream struct {
	upstream.Client
	reviews []structs.Review
	err     error
}

func (m *mockUpstream) ListReviews(context.Context, string) ([]structs.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

func TestListByProductComputesAverage(t *testing.T) {
	up := &mockUpstream{reviews: []structs.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}}
	svc := &service{upstream: up, logger: logger.New("error")}

	result, err := svc.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)

	assert.Len(t, result.Reviews, 3)
	assert.InDelta(t, 4.0, result.AverageRating, 1e-9)
}

func TestListByProductNoReviews(t *testing.T) {
	svc := &service{upstream: &mockUpstream{}, logger: logger.New("error")}

	result, err := svc.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)

	assert.Empty(t, result.Reviews)
	assert.Zero(t, result.AverageRating)
}

func TestListByProductUpstreamError(t *testing.T) {
	up := &mockUpstream{err: &structs.RemoteCallError{Status: 500, Msg: "boom"}}
	svc := &service{upstream: up, logger: logger.New("error")}

	_, err := svc.ListByProduct(context.Background(), "p1")
	require.Error(t, err)
}
