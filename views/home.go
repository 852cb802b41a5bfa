package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// Home renders the portfolio landing page: profile sections followed by the
// latest blog posts and papers.
func Home(cfg SiteConfig, p Profile, posts []PostSummary, papers []PaperSummary) templ.Component {
	return page(cfg, cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<header class=\"hero\">")
		b.WriteString("<h1>" + esc(p.Name) + "</h1>")
		if p.Location != "" {
			b.WriteString("<p class=\"location\">" + esc(p.Location) + "</p>")
		}
		b.WriteString("<p class=\"summary\">" + esc(p.Summary) + "</p>")
		b.WriteString("<nav class=\"links\">")
		if p.GitHub != "" {
			b.WriteString("<a href=\"https://" + esc(p.GitHub) + "\">GitHub</a> ")
		}
		if p.LinkedIn != "" {
			b.WriteString("<a href=\"https://" + esc(p.LinkedIn) + "\">LinkedIn</a> ")
		}
		if p.Email != "" {
			b.WriteString("<a href=\"mailto:" + esc(p.Email) + "\">Email</a>")
		}
		b.WriteString("</nav></header>")

		b.WriteString("<section id=\"skills\"><h2>Skills</h2>")
		writeList(b, "skills languages", p.Skills.Languages)
		writeList(b, "skills tools", p.Skills.Tools)
		writeList(b, "skills specializations", p.Skills.Specializations)
		writeList(b, "skills soft", p.Skills.SoftSkills)
		b.WriteString("</section>")

		b.WriteString("<section id=\"projects\"><h2>Projects</h2>")
		for _, pr := range p.Projects {
			b.WriteString("<article class=\"project\">")
			if pr.Image != "" {
				b.WriteString("<img src=\"" + esc(pr.Image) + "\" alt=\"" + esc(pr.Title) + "\">")
			}
			b.WriteString("<h3>" + esc(pr.Title) + "</h3>")
			b.WriteString("<p>" + esc(pr.Description) + "</p>")
			writeList(b, "project-tools", pr.Tools)
			if pr.Link != "" {
				b.WriteString("<a href=\"" + esc(pr.Link) + "\">View project</a>")
			}
			b.WriteString("</article>")
		}
		b.WriteString("</section>")

		b.WriteString("<section id=\"experience\"><h2>Experience</h2>")
		for _, e := range p.Experience {
			b.WriteString("<article class=\"role\">")
			b.WriteString("<h3>" + esc(e.Title) + " &middot; " + esc(e.Company) + "</h3>")
			b.WriteString("<p class=\"meta\">" + esc(e.Location) + " &middot; " + esc(e.Duration) + "</p>")
			writeList(b, "responsibilities", e.Responsibilities)
			b.WriteString("</article>")
		}
		b.WriteString("</section>")

		b.WriteString("<section id=\"education\"><h2>Education</h2>")
		for _, e := range p.Education {
			b.WriteString("<article class=\"degree\">")
			b.WriteString("<h3>" + esc(e.Degree) + "</h3>")
			b.WriteString("<p class=\"meta\">" + esc(e.Institution) + " &middot; " + esc(e.Duration) + "</p>")
			if e.Focus != "" {
				b.WriteString("<p>Focus: " + esc(e.Focus) + "</p>")
			}
			writeList(b, "coursework", e.Coursework)
			b.WriteString("</article>")
		}
		b.WriteString("</section>")

		if len(posts) > 0 {
			b.WriteString("<section id=\"blog\"><h2>Blog</h2>")
			for _, post := range posts {
				b.WriteString("<article class=\"post\">")
				b.WriteString("<h3><a href=\"/blog/" + esc(post.Slug) + "/\">" + esc(post.Title) + "</a></h3>")
				b.WriteString("<p class=\"meta\">" + esc(post.Date) + "</p>")
				b.WriteString("<p>" + esc(post.Description) + "</p>")
				b.WriteString("</article>")
			}
			b.WriteString("</section>")
		}

		if len(papers) > 0 {
			b.WriteString("<section id=\"papers\"><h2>Papers</h2>")
			for _, paper := range papers {
				b.WriteString("<article class=\"paper\">")
				b.WriteString("<h3><a href=\"/public/papers/" + esc(paper.Filename) + "\">" + esc(paper.Title) + "</a></h3>")
				b.WriteString("<p class=\"meta\">" + esc(paper.Date) + "</p>")
				b.WriteString("<p>" + esc(paper.Description) + "</p>")
				b.WriteString("</article>")
			}
			b.WriteString("</section>")
		}
	})
}
