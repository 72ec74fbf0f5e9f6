package logger

import (
	"bytes"
	"context"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

type logCtxKey struct{}

var logCtx logCtxKey

const (
	logIDKey   = "logID"
	requestKey = "request"
)

// LogID ties together every log line emitted while serving one request.
type LogID [8]byte

func (lid LogID) String() string {
	return hex.EncodeToString(lid[:])
}

var nilLogID = LogID{}

func (lid LogID) IsValid() bool {
	return !bytes.Equal(lid[:], nilLogID[:])
}

type logContext struct {
	StartTime time.Time
	RequestID string
	LogID     LogID
}

func (lgCtx *logContext) ToFields() []zap.Field {
	if lgCtx == nil {
		return nil
	}

	attrs := make([]zap.Field, 0, 2)
	attrs = append(attrs, zap.String(logIDKey, lgCtx.LogID.String()))

	if lgCtx.RequestID != "" {
		attrs = append(attrs, zap.String(requestKey, lgCtx.RequestID))
	}
	return attrs
}

// Context returns ctx carrying a fresh log ID, or ctx unchanged when one
// is already attached.
func (l *logger) Context(ctx context.Context) context.Context {
	if _, ok := ctx.Value(&logCtx).(*logContext); ok {
		return ctx
	}

	return context.WithValue(ctx, &logCtx, &logContext{
		LogID:     l.idGenerator.NewLogID(ctx),
		StartTime: time.Now(),
	})
}

func getAttrs(ctx context.Context) []zap.Field {
	lgCtx, _ := ctx.Value(&logCtx).(*logContext)
	if lgCtx == nil {
		return nil
	}

	return lgCtx.ToFields()
}
