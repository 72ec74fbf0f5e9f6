package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"farmstand/internal/cart"
	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/redis"
	"farmstand/pkg/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockKV struct {
	records map[string][]byte
	deleted []string
}

func newMockKV() *mockKV {
	return &mockKV{records: map[string][]byte{}}
}

func (m *mockKV) Save(_ context.Context, key string, value any, _ time.Duration) error {
	b, _ := json.Marshal(value)
	m.records[key] = b
	return nil
}

func (m *mockKV) SaveObj(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.records[key] = b
	return nil
}

func (m *mockKV) Find(_ context.Context, key string) (string, error) {
	b, ok := m.records[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return string(b), nil
}

func (m *mockKV) FindObj(_ context.Context, key string, value any) error {
	b, ok := m.records[key]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(b, value)
}

func (m *mockKV) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.records, key)
	return nil
}

type mockCart struct {
	cart.Service
	cleared []string
}

func (m *mockCart) Clear(_ context.Context, cartKey string) error {
	m.cleared = append(m.cleared, cartKey)
	return nil
}

type mockUpstream struct {
	upstream.Client
	loginResp structs.AuthResponse
	loginErr  error
}

func (m *mockUpstream) Login(context.Context, structs.Credentials) (structs.AuthResponse, error) {
	if m.loginErr != nil {
		return structs.AuthResponse{}, m.loginErr
	}
	return m.loginResp, nil
}

func newTestService(up upstream.Client, kv redis.Client, carts cart.Service) Service {
	return &service{
		upstream: up,
		kv:       kv,
		cart:     carts,
		logger:   logger.New("error"),
	}
}

func TestLoginPersistsSessionAndIssuesToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	kv := newMockKV()
	up := &mockUpstream{loginResp: structs.AuthResponse{
		User:  structs.User{ID: "u1", Name: "Asha", Role: structs.RoleCustomer},
		Token: "upstream-token",
	}}
	svc := newTestService(up, kv, &mockCart{})

	auth, err := svc.Login(context.Background(), structs.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "u1", auth.User.ID)
	assert.NotEmpty(t, auth.Token)
	assert.NotEqual(t, "upstream-token", auth.Token, "gateway issues its own token")

	sess, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", sess.UpstreamToken)
	assert.True(t, sess.IsCustomer())
}

func TestLoginFailurePropagates(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	up := &mockUpstream{loginErr: &structs.RemoteCallError{Status: 401, Msg: "Invalid credentials"}}
	svc := newTestService(up, newMockKV(), &mockCart{})

	_, err := svc.Login(context.Background(), structs.Credentials{Email: "a@b.c", Password: "bad"})
	require.Error(t, err)

	var remoteErr *structs.RemoteCallError
	assert.ErrorAs(t, err, &remoteErr)
}

func TestGetUnknownUserIsUnauthorized(t *testing.T) {
	svc := newTestService(&mockUpstream{}, newMockKV(), &mockCart{})

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, structs.ErrUnauthorized)
}

func TestLogoutClearsSessionAndCartTogether(t *testing.T) {
	kv := newMockKV()
	carts := &mockCart{}
	svc := newTestService(&mockUpstream{}, kv, carts)

	require.NoError(t, kv.SaveObj(context.Background(), "session.u1", structs.Session{
		User: structs.User{ID: "u1"},
	}, 0))

	require.NoError(t, svc.Logout(context.Background(), "u1"))

	assert.Contains(t, kv.deleted, "session.u1")
	assert.Equal(t, []string{"u1"}, carts.cleared)

	_, err := svc.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, structs.ErrUnauthorized)
}
