package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger emits one access-log line per request after the handler has run,
// leveled by response status.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r)

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		}

		switch {
		case ww.Status() >= http.StatusInternalServerError:
			slog.ErrorContext(r.Context(), "request failed", attrs...)
		case ww.Status() >= http.StatusBadRequest:
			slog.WarnContext(r.Context(), "request rejected", attrs...)
		default:
			slog.InfoContext(r.Context(), "request completed", attrs...)
		}
	})
}
