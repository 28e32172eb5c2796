// Package httpapi exposes the HTTP layer of the site.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/fairyhunter13/product-pages/internal/obs"
	"github.com/fairyhunter13/product-pages/internal/view"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// WriteHTMLError writes the site's fallback page for status inside the layout.
func WriteHTMLError(w http.ResponseWriter, r *http.Request, status int, siteTitle string) {
	var body view.Heading
	if status == http.StatusNotFound {
		body = view.NotFound()
	} else {
		body = view.ErrorPage(status)
	}
	if err := writeHTML(r.Context(), w, status, view.Layout(strconv.Itoa(status)+" | "+siteTitle, body)); err != nil {
		obs.Logger.Error("html_render_error",
			"status", status,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// writeHTML renders c fully before touching w. On a render error nothing is
// written and the error is returned to the caller.
func writeHTML(ctx context.Context, w http.ResponseWriter, status int, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
