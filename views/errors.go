package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return page(cfg, "Not Found | "+cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<main class=\"error-page\">")
		b.WriteString("<h1>404</h1>")
		b.WriteString("<p>That page does not exist.</p>")
		b.WriteString("<a href=\"/\">Back to " + esc(cfg.Name) + "</a>")
		b.WriteString("</main>")
	})
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return page(cfg, "Error | "+cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<main class=\"error-page\">")
		b.WriteString("<h1>500</h1>")
		b.WriteString("<p>Something went wrong. Try again in a moment.</p>")
		b.WriteString("<a href=\"/\">Back to " + esc(cfg.Name) + "</a>")
		b.WriteString("</main>")
	})
}
