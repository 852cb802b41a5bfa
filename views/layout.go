// Package views renders the portfolio's pages as templ components written in
// plain Go. Components build their HTML into a buffer and write it out via
// templ.ComponentFunc.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// page wraps body HTML in the shared document shell.
func page(cfg SiteConfig, title string, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		b.WriteString("<title>" + esc(title) + "</title>\n")
		if cfg.Description != "" {
			b.WriteString("<meta name=\"description\" content=\"" + esc(cfg.Description) + "\">\n")
		}
		if cfg.Author != "" {
			b.WriteString("<meta name=\"author\" content=\"" + esc(cfg.Author) + "\">\n")
		}
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\">\n")
		b.WriteString("</head>\n<body>\n")
		body(&b)
		b.WriteString("\n</body>\n</html>\n")
		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeList(b *bytes.Buffer, class string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("<ul class=\"" + class + "\">")
	for _, it := range items {
		b.WriteString("<li>" + esc(it) + "</li>")
	}
	b.WriteString("</ul>")
}
