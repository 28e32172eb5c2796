package httpapi

import (
	"expvar"
	"net/http"

	"github.com/fairyhunter13/product-pages/internal/view"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/{productid}", Page(app, "product_details", view.ProductDetails))
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.HandleFunc("GET /debug/metrics", app.metricsHandler)
	mux.Handle("GET /debug/vars", expvar.Handler())
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)
	mux.HandleFunc("/", app.notFoundHandler)
	return WithRequestID(WithLogging(app.WithRecover(mux)))
}
