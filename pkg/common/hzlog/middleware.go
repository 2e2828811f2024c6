package hzlog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// InjectRequestIDToLogContext propagates the chi request id into the
// hzlog context, so every record logged while serving the request
// carries it.
func InjectRequestIDToLogContext() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			rID := middleware.GetReqID(ctx)
			lgCtx := ContextWith(ctx, slog.String("request_id", rID))

			h.ServeHTTP(w, r.WithContext(lgCtx))
		})
	}
}
