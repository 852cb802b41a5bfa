// Package portfolio implements a personal portfolio website built with Go,
// Echo, and templ: a public frontend (bio, skills, projects, experience,
// education), an admin-authenticated content layer for blog posts, uploaded
// papers, and images, and thin proxy endpoints to the Gemini API.
package portfolio

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Pradyumna2098/Portfolio/views"
)

// App is the central portfolio application. It wires together the content
// store, message log, profile, assistant, middleware, and routes.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Messages  *MessageStore
	Profile   *views.Profile
	Generator TextGenerator
	Mailer    Mailer

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates a portfolio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the stores, profile, assistant, middleware, and routes,
// then starts the server.
func (a *App) Start() error {
	if a.Config.AdminUser == "" || a.Config.AdminPassword == "" {
		return fmt.Errorf("portfolio: AdminUser and AdminPassword are required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.ContentPath)
	if err != nil {
		return fmt.Errorf("portfolio: init content store: %w", err)
	}
	a.Store = store

	profile, err := LoadProfile(a.Config.ProfilePath)
	if err != nil {
		return fmt.Errorf("portfolio: load profile: %w", err)
	}
	a.Profile = profile

	messages, err := NewMessageStore(a.Config.MessagesPath)
	if err != nil {
		return fmt.Errorf("portfolio: init message store: %w", err)
	}
	a.Messages = messages

	if a.Generator == nil && a.Config.GeminiAPIKey != "" {
		gen, err := NewGeminiGenerator(context.Background(), a.Config.GeminiAPIKey, a.Config.GeminiModel)
		if err != nil {
			return fmt.Errorf("portfolio: init assistant: %w", err)
		}
		a.Generator = gen
	}

	if a.Mailer == nil && a.Config.SMTPHost != "" {
		a.Mailer = &SMTPMailer{
			Host:     a.Config.SMTPHost,
			Port:     a.Config.SMTPPort,
			Username: a.Config.SMTPUsername,
			Password: a.Config.SMTPPassword,
			From:     a.Config.ContactFrom,
			To:       a.Config.ContactTo,
		}
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.PublicDir)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handleBlogPost)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public JSON API — content listing, assistant proxies, contact form.
	api := e.Group("/api")
	api.GET("/content", a.handleListContent)
	api.POST("/generate-bio", a.handleGenerateBio)
	api.POST("/analyze-skills", a.handleAnalyzeSkills)
	api.POST("/generate-project-tags", a.handleProjectTags)
	api.POST("/chatbot", a.handleChatbot)
	api.POST("/search", a.handleSearch)
	api.POST("/contact", a.handleContact)

	// Admin entry points. Login and logout stay outside the session gate.
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login", a.handleAdminLogin)
	e.GET("/admin/logout", a.handleAdminLogout)

	// Mutating content operations and admin listings require the gate.
	e.POST("/admin/upload_paper", a.handlePaperUpload, a.requireAdmin)
	e.POST("/admin/upload_image", a.handleImageUpload, a.requireAdmin)
	e.POST("/admin/create_blog", a.handleCreateBlog, a.requireAdmin)
	e.GET("/admin/api/blogs", a.handleListBlogs, a.requireAdmin)
	e.GET("/admin/api/papers", a.handleListPapers, a.requireAdmin)
	e.GET("/admin/api/messages", a.handleListMessages, a.requireAdmin)
	e.DELETE("/admin/api/blogs/:id", a.handleDeleteContent, a.requireAdmin)
	e.DELETE("/admin/api/papers/:id", a.handleDeleteContent, a.requireAdmin)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Messages != nil {
		a.Messages.Close()
	}
	if g, ok := a.Generator.(*GeminiGenerator); ok && g != nil {
		g.Close()
	}
	return nil
}

// viewCfg converts SiteConfig into the subset the views package needs.
func (a *App) viewCfg() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func (a *App) papersDir() string {
	return filepath.Join(a.Config.PublicDir, "papers")
}

func (a *App) uploadsDir() string {
	return filepath.Join(a.Config.PublicDir, "uploads")
}

func (a *App) thumbsDir() string {
	return filepath.Join(a.Config.PublicDir, "uploads", "thumbs")
}

func (a *App) blogDir() string {
	return filepath.Join(a.Config.PublicDir, "blog")
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("portfolio: required environment variable %s is not set", key)
	}
	return v
}
