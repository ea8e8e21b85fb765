package api

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// notFoundHandler serves the prebuilt UI for unmatched non-API paths when a
// static directory is configured, falling back to index.html for SPA routes.
func (app *App) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.StaticAssetsDir == "" || strings.HasPrefix(r.URL.Path, ApiPathPrefix+"/") || r.Method != http.MethodGet {
		app.notFoundResponse(w, r)
		return
	}

	staticDir := http.Dir(app.config.StaticAssetsDir)
	if f, err := staticDir.Open(r.URL.Path); err == nil {
		_ = f.Close()
		app.logger.Debug("Serving static file", slog.String("path", r.URL.Path))
		http.FileServer(staticDir).ServeHTTP(w, r)
		return
	}

	app.logger.Debug("Static asset not found, serving index.html", slog.String("path", r.URL.Path))
	http.ServeFile(w, r, path.Join(app.config.StaticAssetsDir, "index.html"))
}
