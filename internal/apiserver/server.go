// Package apiserver exposes the stats boundary API over HTTP, for
// callers living outside the process (any language that can speak
// JSON over HTTP plays the role the C callers played for the
// original calculator).
package apiserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/HazyCorp/statscalc/internal/statsapi"
	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
	"github.com/HazyCorp/statscalc/pkg/ratelimit"
)

type Config struct {
	Port      uint64         `json:"port" yaml:"port"`
	RateLimit ratelimit.Spec `json:"rate_limit" yaml:"rate_limit"`
}

type Server struct {
	srv *http.Server
	l   *slog.Logger
}

func New(l *slog.Logger, conf Config, api *statsapi.API) *Server {
	l = l.With(slog.String("component", "api-server"))

	h := &handlers{api: api, l: l}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(hzlog.InjectRequestIDToLogContext())
	r.Use(requestLogger(l))
	r.Use(throttle(ratelimit.New(conf.RateLimit)))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/v1/calculators", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)

		r.Route("/{handle}", func(r chi.Router) {
			r.Delete("/", h.destroy)
			r.Post("/values", h.appendValue)
			r.Post("/load", h.load)
			r.Post("/dump", h.dump)
			r.Get("/sum", h.sum)
			r.Get("/mean", h.mean)
			r.Get("/stddev", h.stdDev)
			r.Get("/stats", h.stats)
		})
	})

	return &Server{
		l: l,
		srv: &http.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", conf.Port),
			Handler: r,
		},
	}
}

func NewFX(l *slog.Logger, conf Config, api *statsapi.API, lc fx.Lifecycle) *Server {
	s := New(l, conf, api)
	lc.Append(fx.StartStopHook(
		func() {
			s.l.Info("api server is listenning", slog.String("address", s.srv.Addr))
			go s.srv.ListenAndServe()
		},
		func(ctx context.Context) error {
			return s.srv.Shutdown(ctx)
		},
	))

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func requestLogger(l *slog.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l.DebugContext(
				r.Context(),
				"incoming request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			h.ServeHTTP(w, r)
		})
	}
}

func throttle(lim *ratelimit.Limiter) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
