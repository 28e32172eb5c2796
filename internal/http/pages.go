package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/fairyhunter13/product-pages/internal/obs"
	"github.com/fairyhunter13/product-pages/internal/route"
	"github.com/fairyhunter13/product-pages/internal/view"
)

// Page adapts a page function to an http.HandlerFunc. Path values named by
// P's `path` tags are handed to fn as a Deferred settled off the request
// goroutine. The result is wrapped in the site layout unless ?partial=1.
func Page[P any, C templ.Component](a *App, name string, fn func(context.Context, *route.Deferred[P]) (C, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := fn(r.Context(), route.FromRequest[P](r))
		if err != nil {
			a.pageFailed(w, r, name, err)
			return
		}
		var body templ.Component = c
		if r.URL.Query().Get("partial") != "1" {
			body = view.Layout(a.Cfg.SiteTitle, body)
		}
		if err := writeHTML(r.Context(), w, http.StatusOK, body); err != nil {
			a.pageFailed(w, r, name, err)
			return
		}
		a.rendered.Add(1)
		obs.Logger.Debug("page_rendered",
			"page", name,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
}

func (a *App) pageFailed(w http.ResponseWriter, r *http.Request, name string, err error) {
	a.failed.Add(1)
	status := http.StatusInternalServerError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusServiceUnavailable
	}
	obs.Logger.Error("page_error",
		"page", name,
		"path", r.URL.Path,
		"status", status,
		"error", err,
		"request_id", RequestIDFromContext(r.Context()),
	)
	WriteHTMLError(w, r, status, a.Cfg.SiteTitle)
}
