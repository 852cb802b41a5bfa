package views

import (
	"bytes"
	"strings"

	"github.com/a-h/templ"
)

// BlogDocument renders the standalone HTML document the publisher writes to
// the blog directory. Paragraphs arrive pre-split on blank-line boundaries;
// single newlines within a paragraph become <br> tags.
func BlogDocument(cfg SiteConfig, doc BlogDoc) templ.Component {
	return page(cfg, doc.Title+" | "+cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<article class=\"blog-post\">")
		b.WriteString("<header>")
		b.WriteString("<h1>" + esc(doc.Title) + "</h1>")
		b.WriteString("<p class=\"meta\">" + esc(doc.Date) + "</p>")
		b.WriteString("</header>")
		if doc.Image != "" {
			b.WriteString("<img src=\"" + esc(doc.Image) + "\" alt=\"" + esc(doc.Title) + "\">")
		}
		for _, para := range doc.Paragraphs {
			b.WriteString("<p>")
			lines := strings.Split(para, "\n")
			for i, line := range lines {
				if i > 0 {
					b.WriteString("<br>")
				}
				b.WriteString(esc(line))
			}
			b.WriteString("</p>")
		}
		b.WriteString("<footer><a href=\"/\">&larr; Back to portfolio</a></footer>")
		b.WriteString("</article>")
	})
}
