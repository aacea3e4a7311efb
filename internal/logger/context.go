package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// requestScope holds the correlation values attached to every log line of a
// request.
type requestScope struct {
	requestID string
	clientID  string
}

func scopeFrom(ctx context.Context) requestScope {
	if ctx == nil {
		return requestScope{}
	}
	s, _ := ctx.Value(ctxKey{}).(requestScope)
	return s
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = requestID
	return context.WithValue(ctx, ctxKey{}, s)
}

// WithClientID records the merchant that sent the request.
func WithClientID(ctx context.Context, clientID string) context.Context {
	s := scopeFrom(ctx)
	s.clientID = clientID
	return context.WithValue(ctx, ctxKey{}, s)
}

func RequestIDFrom(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

func ClientIDFrom(ctx context.Context) string {
	return scopeFrom(ctx).clientID
}

// FromCtx returns the global logger tagged with the request and client ids
// found in ctx.
func FromCtx(ctx context.Context) *zap.Logger {
	s := scopeFrom(ctx)

	var fields []zap.Field
	if s.requestID != "" {
		fields = append(fields, zap.String("request_id", s.requestID))
	}
	if s.clientID != "" {
		fields = append(fields, zap.String("client_id", s.clientID))
	}
	if len(fields) == 0 {
		return L()
	}
	return L().With(fields...)
}
