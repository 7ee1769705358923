package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KasumiMercury/primind-task-api/internal/observability/logging"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogging tags the request context with a request id and the module,
// echoes the id back to the caller, and logs one line when the request ends.
func RequestLogging(module logging.Module) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := logging.ValidateAndExtractRequestID(r.Header.Get(RequestIDHeader))

			ctx := logging.WithRequestID(r.Context(), requestID)
			if module != "" {
				ctx = logging.WithModule(ctx, module)
			}

			w.Header().Set(RequestIDHeader, requestID)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}

			if status >= http.StatusInternalServerError {
				slog.ErrorContext(ctx, "request failed", append([]any{slog.String("event", "http.request.fail")}, attrs...)...)

				return
			}

			slog.InfoContext(ctx, "request completed", append([]any{slog.String("event", "http.request.finish")}, attrs...)...)
		})
	}
}
