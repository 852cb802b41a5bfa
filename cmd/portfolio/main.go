// Command portfolio starts the portfolio web server. All configuration comes
// from environment variables, optionally loaded from a .env file.
package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	portfolio "github.com/Pradyumna2098/Portfolio"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := portfolio.SiteConfig{
		Name:        portfolio.EnvOr("SITE_NAME", "Portfolio"),
		URL:         strings.TrimSuffix(portfolio.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),

		Addr:         portfolio.EnvOr("ADDR", ":3000"),
		ContentPath:  portfolio.EnvOr("CONTENT_PATH", "data/content.json"),
		MessagesPath: portfolio.EnvOr("MESSAGES_PATH", "data/messages.db"),
		ProfilePath:  portfolio.EnvOr("PROFILE_PATH", "profile.yaml"),
		PublicDir:    portfolio.EnvOr("PUBLIC_DIR", "public"),

		AdminUser:     portfolio.MustEnv("ADMIN_USERNAME"),
		AdminPassword: portfolio.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: portfolio.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  portfolio.EnvOr("GEMINI_MODEL", "gemini-2.0-flash"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		ContactFrom:  os.Getenv("CONTACT_FROM"),
		ContactTo:    os.Getenv("CONTACT_TO"),
	}

	app := portfolio.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
