package main

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// staticDir holds the fixed frontend pages. These routes have no
// interaction with task or user state.
const staticDir = "static"

// staticRoutes registers the fixed HTML pages and the asset file server.
func (app *application) staticRoutes(r chi.Router) {
	pages := map[string]string{
		"/":          "index.html",
		"/dashboard": "dashboard.html",
		"/login":     "login.html",
		"/signup":    "signup.html",
	}

	for route, file := range pages {
		path := filepath.Join(staticDir, file)
		r.Get(route, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, path)
		})
	}

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)
}
