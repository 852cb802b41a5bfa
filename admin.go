package portfolio

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Pradyumna2098/Portfolio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.viewCfg(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"success": false,
			"error":   "too many login attempts, try again later",
		})
	}
	var req struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid login request"))
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.Config.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.Config.AdminPassword)) == 1
	if !userOK || !passOK {
		a.loginLimiter.Record(c.RealIP())
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "invalid credentials"})
	}
	if err := setAdminSession(c); err != nil {
		return jsonError(c, err)
	}
	a.loginLimiter.Reset(c.RealIP())
	return c.JSON(http.StatusOK, echo.Map{"success": true, "redirect": "/admin/"})
}

func (a *App) handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleListBlogs(c echo.Context) error {
	cs, err := a.Store.Load()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "posts": cs.Posts})
}

func (a *App) handleListPapers(c echo.Context) error {
	cs, err := a.Store.Load()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "papers": cs.Papers})
}

func (a *App) handleListMessages(c echo.Context) error {
	msgs, err := a.Messages.ListMessages()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "messages": msgs})
}

func (a *App) renderAdminDashboard(c echo.Context) error {
	cs, err := a.Store.Load()
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.viewCfg(), postSummaries(cs.Posts), paperSummaries(cs.Papers), CsrfToken(c)))
}

func postSummaries(posts []PostRecord) []views.PostSummary {
	out := make([]views.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, views.PostSummary{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Slug:        p.Slug,
			Image:       p.Image,
			Date:        dateOnly(p.CreatedDate),
		})
	}
	return out
}

func paperSummaries(papers []PaperRecord) []views.PaperSummary {
	out := make([]views.PaperSummary, 0, len(papers))
	for _, p := range papers {
		out = append(out, views.PaperSummary{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Filename:    p.Filename,
			Date:        dateOnly(p.UploadDate),
		})
	}
	return out
}

// dateOnly trims a "2006-01-02 15:04:05" timestamp down to its date part.
func dateOnly(ts string) string {
	if f := strings.Fields(ts); len(f) > 0 {
		return f[0]
	}
	return ts
}
