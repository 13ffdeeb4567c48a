package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "genie-relay/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
// staticDir is the built single-page app; allowedOrigins is a comma separated CORS list.
func NewRouter(genieHandler *GenieHandler, staticDir, allowedOrigins string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(allowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/genie", func(r chi.Router) {
		// The health probe makes at most one remote call.
		r.With(middleware.Timeout(30*time.Second)).Get("/health", genieHandler.Health)

		// send-message holds the connection while Genie works, bounded by the
		// service's own wait deadline, so it must NOT have a router timeout.
		r.Post("/send-message", genieHandler.SendMessage)
	})

	r.Handle("/*", spaHandler(staticDir))

	return r
}

// spaHandler serves files from dir and falls back to index.html so client-side
// routes resolve.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean))); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		if _, err := os.Stat(index); err != nil {
			respondWithJSON(w, http.StatusNotFound, map[string]string{"error": "Frontend not built"})
			return
		}
		http.ServeFile(w, r, index)
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
