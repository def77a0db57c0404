package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key guarding the force endpoint (optional)"`

	// Storage
	DBPath      string `long:"db-path" env:"DB_PATH" default:"./reports.db" description:"SQLite database file path"`
	CatalogPath string `long:"catalog-path" env:"CATALOG_PATH" default:"./sources.yml" description:"Source and keyword catalog file"`

	// Article sources
	NewsAPIKey      string `long:"news-api-key" env:"NEWS_API_KEY" description:"NewsAPI key (query source disabled when empty)"`
	NewsAPIEndpoint string `long:"news-api-endpoint" env:"NEWS_API_ENDPOINT" default:"https://newsapi.org/v2/everything" description:"NewsAPI search endpoint"`
	FetchTimeout    int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Per-source network timeout in seconds"`
	UserAgent       string `long:"user-agent" env:"USER_AGENT" default:"BankDigest/1.0" description:"User agent string for HTTP requests"`

	// Generative backend
	GeminiAPIKey   string  `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Gemini API key (required for report generation)"`
	GeminiEndpoint string  `long:"gemini-endpoint" env:"GEMINI_ENDPOINT" default:"https://generativelanguage.googleapis.com/v1beta" description:"Gemini API base URL"`
	GeminiModel    string  `long:"gemini-model" env:"GEMINI_MODEL" default:"gemini-1.5-flash" description:"Gemini model name"`
	Temperature    float64 `long:"temperature" env:"GEMINI_TEMPERATURE" default:"0.4" description:"Generation temperature"`
	MaxTokens      int     `long:"max-tokens" env:"GEMINI_MAX_TOKENS" default:"2048" description:"Maximum output tokens per generation call"`

	// Mail delivery
	SMTPHost       string `long:"smtp-host" env:"SMTP_HOST" default:"smtp.gmail.com" description:"SMTP server host"`
	SMTPPort       int    `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP server port"`
	EmailUser      string `long:"email-user" env:"EMAIL_USER" description:"SMTP user and sender address"`
	EmailPassword  string `long:"email-password" env:"EMAIL_PASSWORD" description:"SMTP password"`
	RecipientEmail string `long:"recipient-email" env:"RECIPIENT_EMAIL" description:"Report recipient address"`

	// Daily trigger
	ScheduleHour   int    `long:"schedule-hour" env:"SCHEDULE_HOUR" default:"7" description:"Daily trigger hour (wall clock)"`
	ScheduleMinute int    `long:"schedule-minute" env:"SCHEDULE_MINUTE" default:"30" description:"Daily trigger minute"`
	Timezone       string `long:"timezone" env:"TZ" default:"Asia/Kolkata" description:"Timezone for report dates and the daily trigger"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:            raw.Port,
		APIAccessKey:    raw.APIAccessKey,
		DBPath:          raw.DBPath,
		CatalogPath:     raw.CatalogPath,
		NewsAPIKey:      raw.NewsAPIKey,
		NewsAPIEndpoint: raw.NewsAPIEndpoint,
		FetchTimeout:    raw.FetchTimeout,
		UserAgent:       raw.UserAgent,
		GeminiAPIKey:    raw.GeminiAPIKey,
		GeminiEndpoint:  raw.GeminiEndpoint,
		GeminiModel:     raw.GeminiModel,
		Temperature:     raw.Temperature,
		MaxTokens:       raw.MaxTokens,
		SMTPHost:        raw.SMTPHost,
		SMTPPort:        raw.SMTPPort,
		EmailUser:       raw.EmailUser,
		EmailPassword:   raw.EmailPassword,
		RecipientEmail:  raw.RecipientEmail,
		ScheduleHour:    raw.ScheduleHour,
		ScheduleMinute:  raw.ScheduleMinute,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using UTC: %v\n", cfg.Timezone, err)
		loc = time.UTC
	}
	cfg.location = loc

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
