package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"tienda/internal/auth"
	"tienda/internal/config"
	"tienda/internal/http/handler"
	mw "tienda/internal/http/middleware"
	"tienda/internal/product"
	"tienda/internal/report"
	"tienda/internal/user"
)

// Deps carries everything the routes need, built once in main.
type Deps struct {
	Users    *user.Service
	UserRepo user.Repository
	Products product.Repository
	JWT      *auth.JWT
	Reports  report.Renderer
}

func NewRouter(cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{Users: d.Users, JWT: d.JWT}
	r.Post("/login", ah.Login)

	uh := &handler.UserHandler{Svc: d.Users, Repo: d.UserRepo}
	r.Post("/users", uh.Create)
	r.Get("/users/{id}", uh.Get)

	ph := &handler.ProductHandler{Repo: d.Products, MaxPageSize: cfg.MaxPageSize}
	rh := &handler.ReportHandler{Repo: d.Products, Renderer: d.Reports}

	r.Route("/products", func(r chi.Router) {
		r.Use(auth.RequireAuth(d.JWT))

		r.Get("/", ph.List)
		r.Post("/", ph.Create)
		r.Get("/report", rh.Generate)
		r.Get("/{id}", ph.Get)
		r.Put("/{id}", ph.Update)
		r.Delete("/{id}", ph.Delete)
	})

	return r
}
