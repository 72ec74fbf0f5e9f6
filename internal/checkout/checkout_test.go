package checkout

import (
	"context"
	"testing"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCarts struct {
	groups  []structs.FarmerGroup
	cleared bool
}

func (m *mockCarts) GroupByFarmer(context.Context, string) ([]structs.FarmerGroup, error) {
	return m.groups, nil
}

func (m *mockCarts) Clear(context.Context, string) error {
	m.cleared = true
	return nil
}

type mockOrders struct {
	created []structs.CreateOrder
	// failAt stops the run on the n-th call (1-based); 0 never fails
	failAt  int
	failErr error
}

func (m *mockOrders) CreateOrder(_ context.Context, _ string, req structs.CreateOrder) (structs.Order, error) {
	if m.failAt != 0 && len(m.created)+1 == m.failAt {
		return structs.Order{}, m.failErr
	}
	m.created = append(m.created, req)
	return structs.Order{ID: "order-" + req.Farmer, Status: structs.OrderStatusPending}, nil
}

func newTestService(carts Carts, orders Orders) Service {
	return &service{carts: carts, orders: orders, logger: logger.New("error")}
}

func customerSession() structs.Session {
	return structs.Session{
		User:          structs.User{ID: "u1", Role: structs.RoleCustomer},
		UpstreamToken: "token",
	}
}

func twoFarmerGroups() []structs.FarmerGroup {
	lineA := structs.CartLine{
		Product:  structs.Product{ID: "a", Price: 10, Farmer: structs.FarmerRef{ID: "s1"}},
		Quantity: 2,
	}
	lineB := structs.CartLine{
		Product:  structs.Product{ID: "b", Price: 20, Farmer: structs.FarmerRef{ID: "s2"}},
		Quantity: 1,
	}
	return []structs.FarmerGroup{
		{Farmer: structs.FarmerRef{ID: "s1"}, Items: []structs.CartLine{lineA}, Total: 20},
		{Farmer: structs.FarmerRef{ID: "s2"}, Items: []structs.CartLine{lineB}, Total: 20},
	}
}

func TestPlaceOrderNonCustomer(t *testing.T) {
	carts := &mockCarts{groups: twoFarmerGroups()}
	orders := &mockOrders{}
	svc := newTestService(carts, orders)

	sess := structs.Session{User: structs.User{ID: "u1", Role: structs.RoleFarmer}}
	_, err := svc.PlaceOrder(context.Background(), sess, "u1")

	assert.ErrorIs(t, err, structs.ErrNotCustomer)
	assert.Empty(t, orders.created, "no remote calls on role failure")
	assert.False(t, carts.cleared)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	carts := &mockCarts{}
	orders := &mockOrders{}
	svc := newTestService(carts, orders)

	_, err := svc.PlaceOrder(context.Background(), customerSession(), "u1")

	assert.ErrorIs(t, err, structs.ErrEmptyCart)
	assert.Empty(t, orders.created)
	assert.False(t, carts.cleared)
}

func TestPlaceOrderAllGroupsSucceed(t *testing.T) {
	carts := &mockCarts{groups: twoFarmerGroups()}
	orders := &mockOrders{}
	svc := newTestService(carts, orders)

	result, err := svc.PlaceOrder(context.Background(), customerSession(), "u1")
	require.NoError(t, err)

	require.Len(t, orders.created, 2)
	assert.Equal(t, "s1", orders.created[0].Farmer)
	assert.Equal(t, "s2", orders.created[1].Farmer)
	assert.Equal(t, []string{"order-s1", "order-s2"}, result.OrderIDs)
	assert.True(t, carts.cleared, "cart cleared after full success")
}

func TestPlaceOrderBuildsOneRequestPerGroup(t *testing.T) {
	carts := &mockCarts{groups: twoFarmerGroups()}
	orders := &mockOrders{}
	svc := newTestService(carts, orders)

	_, err := svc.PlaceOrder(context.Background(), customerSession(), "u1")
	require.NoError(t, err)

	first := orders.created[0]
	require.Len(t, first.Products, 1)
	assert.Equal(t, "a", first.Products[0].Product)
	assert.Equal(t, int64(2), first.Products[0].Quantity)
	assert.Equal(t, 10.0, first.Products[0].Price)
	assert.Equal(t, 20.0, first.TotalAmount)
}

func TestPlaceOrderSecondGroupFails(t *testing.T) {
	carts := &mockCarts{groups: twoFarmerGroups()}
	orders := &mockOrders{
		failAt:  2,
		failErr: &structs.RemoteCallError{Status: 500, Msg: "insert failed"},
	}
	svc := newTestService(carts, orders)

	result, err := svc.PlaceOrder(context.Background(), customerSession(), "u1")
	require.Error(t, err)

	var remoteErr *structs.RemoteCallError
	assert.ErrorAs(t, err, &remoteErr)

	// exactly one order reached the backend, and the cart survives intact
	assert.Len(t, orders.created, 1)
	assert.Equal(t, "s1", orders.created[0].Farmer)
	assert.False(t, carts.cleared)
	assert.Equal(t, []string{"s1"}, result.SubmittedFarmers)
}

func TestPlaceOrderFirstGroupFails(t *testing.T) {
	carts := &mockCarts{groups: twoFarmerGroups()}
	orders := &mockOrders{
		failAt:  1,
		failErr: &structs.RemoteCallError{Status: 502, Msg: "bad gateway"},
	}
	svc := newTestService(carts, orders)

	result, err := svc.PlaceOrder(context.Background(), customerSession(), "u1")
	require.Error(t, err)

	assert.Empty(t, orders.created, "loop stops at the failing group")
	assert.Empty(t, result.SubmittedFarmers)
	assert.False(t, carts.cleared)
}
