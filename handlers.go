package portfolio

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/Pradyumna2098/Portfolio/views"
)

// handleHome serves the portfolio landing page: profile sections plus the
// latest posts and papers.
func (a *App) handleHome(c echo.Context) error {
	cs, err := a.Store.Load()
	if err != nil {
		return err
	}
	profile := a.Profile
	if profile == nil {
		profile = DefaultProfile()
	}
	return Render(c, views.Home(a.viewCfg(), *profile, postSummaries(cs.Posts), paperSummaries(cs.Papers)))
}

// handleBlogPost serves the static document the publisher wrote for the
// slug. A slug without a record, or a record whose document is gone, is a
// 404 — deleted posts must never be served.
func (a *App) handleBlogPost(c echo.Context) error {
	slug := c.Param("slug")
	cs, err := a.Store.Load()
	if err != nil {
		return err
	}
	if !cs.HasSlug(slug) {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewCfg()))
	}
	path := filepath.Join(a.blogDir(), slug+".html")
	if _, err := os.Stat(path); err != nil {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewCfg()))
	}
	return c.File(path)
}

// handleListContent returns all post and paper metadata.
func (a *App) handleListContent(c echo.Context) error {
	cs, err := a.Store.Load()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "posts": cs.Posts, "papers": cs.Papers})
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}
