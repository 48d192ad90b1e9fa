package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// App holds the non-store settings read once at startup.
type App struct {
	Env  string // "production" arms the report scheduler
	Port string

	JWTSecret string

	MailAPIKey       string
	ReportSender     string
	ReportRecipients []string
	ReportTimezone   *time.Location
	ReportHour       int

	GCSBucket string

	RateLimitPerMinute int
}

func LoadApp() App {
	app := App{
		Env:                getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		MailAPIKey:         os.Getenv("MAIL_API_KEY"),
		ReportSender:       os.Getenv("REPORT_SENDER"),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		ReportTimezone:     time.UTC,
		ReportHour:         18,
		RateLimitPerMinute: 120,
	}

	if v := os.Getenv("REPORT_RECIPIENTS"); v != "" {
		for _, r := range strings.Split(v, ",") {
			if r = strings.TrimSpace(r); r != "" {
				app.ReportRecipients = append(app.ReportRecipients, r)
			}
		}
	}
	if v := os.Getenv("REPORT_TIMEZONE"); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			app.ReportTimezone = loc
		}
	}
	if v := os.Getenv("REPORT_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			app.ReportHour = h
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			app.RateLimitPerMinute = n
		}
	}

	return app
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
