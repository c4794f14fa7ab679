package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/solatis/segmentvet/internal/types"
)

// RequestIDHeader carries the request id on HTTP responses and gRPC metadata.
const RequestIDHeader = "x-request-id"

// contextKey is a typed key for context values to avoid collisions.
type contextKey string

// requestIDKey is the context key for the current request id.
const requestIDKey = contextKey("request_id")

// WithRequestID returns ctx carrying id.
func WithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request id from context.
// Returns empty string if not found.
func RequestIDFromContext(ctx context.Context) types.RequestID {
	if id, ok := ctx.Value(requestIDKey).(types.RequestID); ok {
		return id
	}
	return ""
}

// resolveRequestID keeps a well-formed caller id and generates one otherwise.
func resolveRequestID(candidate string) types.RequestID {
	if candidate != "" {
		if id, err := types.ParseRequestID(candidate); err == nil {
			return id
		}
	}
	return types.NewRequestID()
}

// UnaryRequestInterceptor assigns a request id, bounds the call with timeout
// and logs method, status code and duration.
func UnaryRequestInterceptor(logger *slog.Logger, timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		var candidate string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(RequestIDHeader); len(ids) > 0 {
				candidate = ids[0]
			}
		}
		id := resolveRequestID(candidate)
		ctx = WithRequestID(ctx, id)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, string(id)))

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		level := slog.LevelInfo
		outcome := "success"
		if err != nil {
			level = slog.LevelWarn
			outcome = "failure"
		}
		logger.Log(ctx, level, "grpc request",
			"request_id", string(id),
			"method", info.FullMethod,
			"code", code.String(),
			"outcome", outcome,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
