package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aaronzipp/player-compare/internal/web"
)

// RouteOptions configures the router
type RouteOptions struct {
	AssetsDir      string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Routes wires every endpoint. The SSE stream is kept out of the timeout group.
func (ctx *Context) Routes(opts RouteOptions) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/sse/{session}", ctx.HandleSSE)

	r.Group(func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		r.Get("/", ctx.HandleIndex)
		r.Get("/health", ctx.HandleHealth)

		r.Route("/s/{session}", func(r chi.Router) {
			r.Post("/select/{slot}", ctx.HandleSelect)
			r.Post("/reset", ctx.HandleReset)
			r.Post("/detail/{player}", ctx.HandleDetail)
			r.Get("/share.png", ctx.HandleShareQR)
		})

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.AllowedOrigins,
				AllowedMethods: []string{"GET", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
			r.Get("/players", ctx.HandlePlayers)
			r.Get("/players/{id}", ctx.HandlePlayer)
			r.Get("/compare", ctx.HandleCompare)
		})

		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))
		if opts.AssetsDir != "" {
			r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.AssetsDir))))
		}
	})

	return r
}
