package portfolio

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Owner name for page metadata

	Addr         string // Listen address (default ":3000")
	ContentPath  string // JSON content document (default "data/content.json")
	MessagesPath string // Contact message database (default "data/messages.db")
	ProfilePath  string // Profile YAML (default "profile.yaml")
	PublicDir    string // Static assets root (default "public")

	AdminUser     string // Required: admin login username
	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	GeminiAPIKey string // Assistant endpoints are disabled when empty
	GeminiModel  string // Model name (default "gemini-2.0-flash")

	SMTPHost     string // Contact relay is disabled when empty
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	ContactFrom  string // Sender address for relayed contact mail
	ContactTo    string // Recipient address for relayed contact mail
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentPath == "" {
		c.ContentPath = "data/content.json"
	}
	if c.MessagesPath == "" {
		c.MessagesPath = "data/messages.db"
	}
	if c.ProfilePath == "" {
		c.ProfilePath = "profile.yaml"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithGenerator injects a text generator, replacing the Gemini client built
// from SiteConfig. Used by tests and alternative backends.
func WithGenerator(g TextGenerator) Option {
	return func(a *App) {
		a.Generator = g
	}
}

// WithMailer injects a contact mail relay, replacing the SMTP mailer built
// from SiteConfig.
func WithMailer(m Mailer) Option {
	return func(a *App) {
		a.Mailer = m
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
