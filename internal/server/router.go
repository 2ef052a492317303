package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/constants"
)

// NewRouter assembles the API surface with its middleware chain.
func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	// Any origin, method and header so browser frontends can call the API
	// directly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", h.root)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/analyze-mood", h.analyzeMood)
		r.Post("/recommendations", h.recommendations)
	})

	return r
}

// recoverer converts handler panics into the service's 500 envelope instead
// of chi's plain-text default.
func recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("Handler panic",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
					)
					writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", rvr))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer wraps the router in an http.Server with the shared timeouts.
func NewServer(handler http.Handler, port int) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  constants.ServerConfig.ReadTimeout,
		WriteTimeout: constants.ServerConfig.WriteTimeout,
	}
}
