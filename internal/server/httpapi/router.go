package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
)

const requestTimeout = 60 * time.Second

// NewRouter assembles the full REST surface. The public auth endpoints sit
// behind the rate limiter; everything under /api except register/login is
// guarded by the auth gateway.
func NewRouter(cfg *config.Config, log logging.Logger, users UserService, tasks TaskService, limiter *rateLimiter) http.Handler {
	authHandler := NewAuthHandler(users)
	userHandler := NewUserHandler(users)
	taskHandler := NewTaskHandler(tasks)

	authGateway := requireAuth(log, users, []byte(cfg.SecretKey))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", handleHealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(limiter.middleware)
				r.Post("/register", makeHandler(log, authHandler.Register))
				r.Post("/login", makeHandler(log, authHandler.Login))
			})
			r.Group(func(r chi.Router) {
				r.Use(authGateway)
				r.Post("/logout", makeHandler(log, authHandler.Logout))
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(authGateway)
			r.Get("/profile", makeHandler(log, userHandler.GetProfile))
			r.Put("/profile", makeHandler(log, userHandler.UpdateProfile))
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(authGateway)
			r.Get("/", makeHandler(log, taskHandler.List))
			r.Post("/", makeHandler(log, taskHandler.Create))
			r.Get("/stats", makeHandler(log, taskHandler.Stats))
			r.Delete("/batch", makeHandler(log, taskHandler.DeleteBatch))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", makeHandler(log, taskHandler.Get))
				r.Put("/", makeHandler(log, taskHandler.Update))
				r.Delete("/", makeHandler(log, taskHandler.Delete))
			})
		})
	})

	return r
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
