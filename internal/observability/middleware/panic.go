package middleware

import (
	"errors"
	"log/slog"
	"net/http"
)

// PanicRecoveryHTTP turns a handler panic into a 500 JSON response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func PanicRecoveryHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			slog.ErrorContext(r.Context(), "panic recovered",
				slog.String("event", "app.panic"),
				slog.Any("error", rec),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"internal server error"}` + "\n"))
		}()

		next.ServeHTTP(w, r)
	})
}
