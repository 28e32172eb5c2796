// Package view holds the page components served by the site.
package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Heading is a single <h1>..<h6> element with a text child.
// Text is kept raw; Render escapes it.
type Heading struct {
	Level int
	Text  string
}

var _ templ.Component = Heading{}

// Render writes the element to w.
func (h Heading) Render(ctx context.Context, w io.Writer) error {
	tag := "h" + strconv.Itoa(clampLevel(h.Level))
	if _, err := io.WriteString(w, "<"+tag+">"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, templ.EscapeString(h.Text)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

func clampLevel(n int) int {
	switch {
	case n < 1:
		return 1
	case n > 6:
		return 6
	}
	return n
}

// Layout wraps body in the root document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!doctype html><html lang="en"><head><meta charset="utf-8"/>` +
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>` +
			"<title>" + templ.EscapeString(title) + "</title></head><body>"
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// NotFound is the fallback page for paths no route matches.
func NotFound() Heading {
	return Heading{Level: 1, Text: "404 | This page could not be found."}
}

// ErrorPage is the generic page shown when a page fails to render.
func ErrorPage(status int) Heading {
	if status == 0 {
		status = 500
	}
	return Heading{Level: 1, Text: strconv.Itoa(status) + " | Application error: a server-side exception has occurred."}
}
