package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"farmstand/internal/structs"
	"farmstand/pkg/config"
	"farmstand/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
	}

	// Client talks to the remote marketplace CRUD API. Every method maps
	// one-to-one onto an upstream endpoint; token is the caller's upstream
	// bearer token where the endpoint requires auth.
	Client interface {
		ListProducts(ctx context.Context) ([]structs.Product, error)
		GetProduct(ctx context.Context, id string) (structs.Product, error)
		CreateProduct(ctx context.Context, token string, req structs.CreateProduct) (structs.Product, error)
		UpdateProduct(ctx context.Context, token string, id string, req structs.PatchProduct) (structs.Product, error)
		DeleteProduct(ctx context.Context, token string, id string) error

		CreateOrder(ctx context.Context, token string, req structs.CreateOrder) (structs.Order, error)
		MyOrders(ctx context.Context, token string) ([]structs.Order, error)
		FarmerOrders(ctx context.Context, token string) ([]structs.Order, error)
		UpdateOrderStatus(ctx context.Context, token string, id string, status string) error

		Login(ctx context.Context, req structs.Credentials) (structs.AuthResponse, error)
		Register(ctx context.Context, req structs.RegisterRequest) error
		ListUsers(ctx context.Context, token string) ([]structs.User, error)
		UpdateUserRole(ctx context.Context, token string, id string, role string) error
		PromoteAdmin(ctx context.Context, token string, id string) error
		DeleteUser(ctx context.Context, token string, id string) error

		ListReviews(ctx context.Context, productID string) ([]structs.Review, error)
		CreateReview(ctx context.Context, token string, req structs.CreateReview) (structs.Review, error)
	}

	client struct {
		logger  logger.Logger
		baseURL string
		http    *http.Client
	}
)

func New(p Params) Client {
	timeout := p.Config.GetDuration("upstream.timeout")
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &client{
		logger:  p.Logger,
		baseURL: strings.TrimRight(p.Config.GetString("upstream.base_url"), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do issues one JSON request and decodes the response into out (out may be
// nil when the body is irrelevant). Non-2xx statuses become a
// *structs.RemoteCallError carrying the server "msg" field when present.
func (c *client) do(ctx context.Context, method, path, token string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call upstream: %w", err)
	}
	defer httpResp.Body.Close()

	body, _ := io.ReadAll(httpResp.Body)
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.logger.Warn(ctx, "upstream returned non-2xx",
			zap.String("path", path),
			zap.Int("status", httpResp.StatusCode),
			zap.ByteString("body", body),
		)
		return &structs.RemoteCallError{
			Status: httpResp.StatusCode,
			Msg:    serverMsg(body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error(ctx, "failed to unmarshal upstream response",
			zap.String("path", path), zap.Error(err))
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// serverMsg pulls the "msg" field the upstream uses for error bodies,
// falling back to the raw body text.
func serverMsg(body []byte) string {
	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Msg != "" {
		return payload.Msg
	}
	return strings.TrimSpace(string(body))
}
