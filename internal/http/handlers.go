package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/product-pages/internal/config"
	httpopenapi "github.com/fairyhunter13/product-pages/internal/http/openapi"
)

type App struct {
	Cfg      config.Config
	closing  atomic.Bool
	started  time.Time
	rendered atomic.Uint64
	failed   atomic.Uint64
}

func NewApp(cfg config.Config) *App {
	return &App{Cfg: cfg, started: time.Now()}
}

// StartShutdown flips /healthz to 503 so load balancers stop routing here
// while in-flight pages finish.
func (a *App) StartShutdown() {
	a.closing.Store(true)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	if a.closing.Load() {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"pages_rendered": a.rendered.Load(),
		"page_errors":    a.failed.Load(),
		"uptime_sec":     time.Since(a.started).Seconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

func (a *App) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteHTMLError(w, r, http.StatusNotFound, a.Cfg.SiteTitle)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
