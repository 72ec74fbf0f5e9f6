package upstream

import (
	"context"
	"net/http"

	"farmstand/internal/structs"
)

func (c *client) CreateOrder(ctx context.Context, token string, req structs.CreateOrder) (structs.Order, error) {
	var order structs.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return structs.Order{}, err
	}
	return order, nil
}

func (c *client) MyOrders(ctx context.Context, token string) ([]structs.Order, error) {
	var orders []structs.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *client) FarmerOrders(ctx context.Context, token string) ([]structs.Order, error) {
	var orders []structs.Order
	if err := c.do(ctx, http.MethodGet, "/orders/farmer-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *client) UpdateOrderStatus(ctx context.Context, token string, id string, status string) error {
	req := structs.UpdateOrderStatus{Status: status}
	return c.do(ctx, http.MethodPut, "/orders/"+id+"/status", token, req, nil)
}
