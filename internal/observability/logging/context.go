package logging

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

type moduleKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}

	return ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey{}, module)
}

func ModuleFromContext(ctx context.Context) (Module, bool) {
	m, ok := ctx.Value(moduleKey{}).(Module)

	return m, ok
}

// ValidateAndExtractRequestID keeps a caller supplied id when it is a UUID and
// otherwise mints a new UUIDv7.
func ValidateAndExtractRequestID(candidate string) string {
	if candidate != "" {
		if parsed, err := uuid.Parse(candidate); err == nil {
			return parsed.String()
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
