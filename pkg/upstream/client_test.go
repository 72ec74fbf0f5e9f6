package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *client {
	return &client{
		logger:  logger.New("error"),
		baseURL: srv.URL,
		http:    srv.Client(),
	}
}

func TestCreateOrderSendsBearerAndBody(t *testing.T) {
	var gotAuth string
	var gotBody structs.CreateOrder

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(structs.Order{ID: "o1", Status: structs.OrderStatusPending})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	req := structs.CreateOrder{
		Farmer:      "f1",
		Products:    []structs.OrderItem{{Product: "p1", Quantity: 2, Price: 10}},
		TotalAmount: 20,
	}

	order, err := c.CreateOrder(context.Background(), "secret-token", req)
	require.NoError(t, err)

	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, req, gotBody)
}

func TestNon2xxBecomesRemoteCallError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"insufficient stock"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.CreateOrder(context.Background(), "t", structs.CreateOrder{Farmer: "f1"})
	require.Error(t, err)

	var remoteErr *structs.RemoteCallError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
	assert.Equal(t, "insufficient stock", remoteErr.Msg)
}

func TestNon2xxWithoutMsgFieldKeepsBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("something broke"))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.ListProducts(context.Background())

	var remoteErr *structs.RemoteCallError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "something broke", remoteErr.Msg)
}

func TestListProductsIsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]structs.Product{
			{ID: "p1", Name: "Fresh Tomatoes", Price: 25, Farmer: structs.FarmerRef{ID: "f1", Name: "Green Acres"}},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Fresh Tomatoes", products[0].Name)
}

func TestUpdateOrderStatusPath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		var body structs.UpdateOrderStatus
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, structs.OrderStatusShipped, body.Status)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	err := c.UpdateOrderStatus(context.Background(), "t", "o42", structs.OrderStatusShipped)
	require.NoError(t, err)

	assert.Equal(t, "/orders/o42/status", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
}
