package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCartService struct {
	view    structs.CartView
	groups  []structs.FarmerGroup
	added   []structs.AddCartItem
	cleared bool
}

func (m *mockCartService) Add(_ context.Context, _ string, product structs.Product, quantity int64) (structs.CartView, error) {
	m.added = append(m.added, structs.AddCartItem{Product: product, Quantity: quantity})
	return m.view, nil
}

func (m *mockCartService) UpdateQuantity(context.Context, string, string, int64) (structs.CartView, error) {
	return m.view, nil
}

func (m *mockCartService) Remove(context.Context, string, string) (structs.CartView, error) {
	return m.view, nil
}

func (m *mockCartService) Clear(context.Context, string) error {
	m.cleared = true
	return nil
}

func (m *mockCartService) Get(context.Context, string) (structs.CartView, error) {
	return m.view, nil
}

func (m *mockCartService) GroupByFarmer(context.Context, string) ([]structs.FarmerGroup, error) {
	return m.groups, nil
}

func setupRouter(t *testing.T, svc *mockCartService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reply.New(reply.Params{Logger: logger.New("error")})

	h := New(Params{Logger: logger.New("error"), CartService: svc})

	r := gin.New()
	// stand-in for CheckAuth: attach a customer session
	r.Use(func(c *gin.Context) {
		c.Set("session", structs.Session{User: structs.User{ID: "u1", Role: structs.RoleCustomer}})
		c.Next()
	})
	r.GET("/cart", h.GetCart)
	r.GET("/cart/by-farmer", h.GetByFarmer)
	r.POST("/cart/items", h.AddItem)
	r.DELETE("/cart", h.ClearCart)
	return r
}

func TestGetCartReturnsView(t *testing.T) {
	svc := &mockCartService{view: structs.CartView{TotalItems: 3, TotalPrice: 40}}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp structs.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "success", resp.Status)
}

func TestAddItemBindsRequest(t *testing.T) {
	svc := &mockCartService{}
	r := setupRouter(t, svc)

	body, _ := json.Marshal(structs.AddCartItem{
		Product:  structs.Product{ID: "p1", Name: "Tomatoes", Price: 25, Farmer: structs.FarmerRef{ID: "f1"}},
		Quantity: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.added, 1)
	assert.Equal(t, "p1", svc.added[0].Product.ID)
	assert.Equal(t, int64(2), svc.added[0].Quantity)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := &mockCartService{}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		bytes.NewReader([]byte(`{"product":{"_id":"p1"},"quantity":0}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp structs.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 400, resp.Code)
	assert.Empty(t, svc.added)
}

func TestClearCart(t *testing.T) {
	svc := &mockCartService{}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.cleared)
}
