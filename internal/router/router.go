// Package router sets up all HTTP routes and middleware chains for the
// Stanmoor site server: the public pages, the story API, static assets,
// and the health check.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"stanmoor/internal/handlers"
	"stanmoor/internal/middleware"
	"stanmoor/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("static assets missing from embed: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/museum", public.Museum)
	r.Get("/museum/{slug}", public.MuseumDetail)
	r.Get("/news", public.News)
	r.Get("/news/{slug}", public.NewsDetail)
	r.Get("/events", public.Events)
	r.Get("/team", public.Team)
	r.Get("/publications", public.Publications)
	r.Get("/education", public.Education)
	r.Get("/education/{slug}", public.EducationDetail)
	r.Get("/field-school", public.FieldSchool)
	r.Get("/partners", public.Partners)
	r.Get("/community", public.Community)
	r.Get("/about", public.About)
	r.Get("/privacy", public.Privacy)
	r.Get("/terms", public.Terms)
	r.Get("/contact", public.Contact)

	// Story API — the only unauthenticated write, rate limited per IP.
	limiter := middleware.NewRateLimiter(5, 1*time.Minute)
	r.With(limiter.Middleware).Post("/api/story", public.Story)

	// Unknown paths get the site 404 page, not the chi default.
	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
