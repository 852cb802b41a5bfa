package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// AdminLogin renders the login form shown to anonymous visitors of /admin/.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	return page(cfg, "Admin | "+cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<main class=\"admin-login\">")
		b.WriteString("<h1>Admin login</h1>")
		if showError {
			b.WriteString("<p class=\"error\">Invalid credentials.</p>")
		}
		b.WriteString("<form method=\"post\" action=\"/admin/login\">")
		b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">")
		b.WriteString("<label>Username <input type=\"text\" name=\"username\" required></label>")
		b.WriteString("<label>Password <input type=\"password\" name=\"password\" required></label>")
		b.WriteString("<button type=\"submit\">Log in</button>")
		b.WriteString("</form>")
		b.WriteString("</main>")
	})
}

// AdminDashboard renders the content-management dashboard. The dashboard
// script reads the CSRF token from the meta tag and sends it as a header on
// upload, publish, and delete requests.
func AdminDashboard(cfg SiteConfig, posts []PostSummary, papers []PaperSummary, csrfToken string) templ.Component {
	return page(cfg, "Dashboard | "+cfg.Name, func(b *bytes.Buffer) {
		b.WriteString("<meta name=\"csrf-token\" content=\"" + esc(csrfToken) + "\">")
		b.WriteString("<main class=\"admin-dashboard\">")
		b.WriteString("<header><h1>Dashboard</h1><a href=\"/admin/logout\">Log out</a></header>")

		b.WriteString("<section id=\"new-post\"><h2>New blog post</h2>")
		b.WriteString("<form id=\"blog-form\">")
		b.WriteString("<label>Title <input type=\"text\" name=\"title\" required></label>")
		b.WriteString("<label>Description <input type=\"text\" name=\"description\" required></label>")
		b.WriteString("<label>Image <input type=\"text\" name=\"image\" placeholder=\"/public/uploads/...\"></label>")
		b.WriteString("<label>Content <textarea name=\"content\" rows=\"12\" required></textarea></label>")
		b.WriteString("<button type=\"submit\">Publish</button>")
		b.WriteString("</form></section>")

		b.WriteString("<section id=\"new-paper\"><h2>Upload paper</h2>")
		b.WriteString("<form id=\"paper-form\" enctype=\"multipart/form-data\">")
		b.WriteString("<label>File <input type=\"file\" name=\"paper\" accept=\".pdf\" required></label>")
		b.WriteString("<label>Title <input type=\"text\" name=\"title\"></label>")
		b.WriteString("<label>Description <input type=\"text\" name=\"description\"></label>")
		b.WriteString("<button type=\"submit\">Upload</button>")
		b.WriteString("</form></section>")

		b.WriteString("<section id=\"new-image\"><h2>Upload image</h2>")
		b.WriteString("<form id=\"image-form\" enctype=\"multipart/form-data\">")
		b.WriteString("<label>File <input type=\"file\" name=\"image\" accept=\".png,.jpg,.jpeg,.gif,.webp\" required></label>")
		b.WriteString("<button type=\"submit\">Upload</button>")
		b.WriteString("</form></section>")

		b.WriteString("<section id=\"posts\"><h2>Posts</h2><ul>")
		for _, p := range posts {
			b.WriteString("<li data-id=\"" + esc(p.ID) + "\">")
			b.WriteString("<a href=\"/blog/" + esc(p.Slug) + "/\">" + esc(p.Title) + "</a> ")
			b.WriteString("<span class=\"meta\">" + esc(p.Date) + "</span> ")
			b.WriteString("<button class=\"delete\" data-kind=\"blogs\" data-id=\"" + esc(p.ID) + "\">Delete</button>")
			b.WriteString("</li>")
		}
		b.WriteString("</ul></section>")

		b.WriteString("<section id=\"papers\"><h2>Papers</h2><ul>")
		for _, p := range papers {
			b.WriteString("<li data-id=\"" + esc(p.ID) + "\">")
			b.WriteString("<a href=\"/public/papers/" + esc(p.Filename) + "\">" + esc(p.Title) + "</a> ")
			b.WriteString("<span class=\"meta\">" + esc(p.Date) + "</span> ")
			b.WriteString("<button class=\"delete\" data-kind=\"papers\" data-id=\"" + esc(p.ID) + "\">Delete</button>")
			b.WriteString("</li>")
		}
		b.WriteString("</ul></section>")

		b.WriteString("</main>")
		b.WriteString("<script src=\"/public/dashboard.js\"></script>")
	})
}
