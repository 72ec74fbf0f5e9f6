package orders

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
	statusCalls int
}

func (m *mockUpstream) UpdateOrderStatus(context.Context, string, string, string) error {
	m.statusCalls++
	return nil
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	up := &mockUpstream{}
	svc := &service{upstream: up, logger: logger.New("error")}

	err := svc.UpdateStatus(context.Background(), structs.Session{}, "o1", "Teleported")
	assert.ErrorIs(t, err, structs.ErrBadRequest)
	assert.Zero(t, up.statusCalls, "invalid status never reaches upstream")
}

func TestUpdateStatusAcceptsKnownStatuses(t *testing.T) {
	up := &mockUpstream{}
	svc := &service{upstream: up, logger: logger.New("error")}

	for _, status := range []string{
		structs.OrderStatusPending,
		structs.OrderStatusPacked,
		structs.OrderStatusShipped,
		structs.OrderStatusDelivered,
	} {
		require.NoError(t, svc.UpdateStatus(context.Background(), structs.Session{}, "o1", status))
	}
	assert.Equal(t, 4, up.statusCalls)
}
