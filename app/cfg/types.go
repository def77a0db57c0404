package cfg

import "time"

type Cfg struct {
	// HTTP server
	Port         string
	APIAccessKey string

	// Storage
	DBPath      string
	CatalogPath string

	// Article sources
	NewsAPIKey      string
	NewsAPIEndpoint string
	FetchTimeout    int // seconds, per network call
	UserAgent       string

	// Generative backend
	GeminiAPIKey   string
	GeminiEndpoint string
	GeminiModel    string
	Temperature    float64
	MaxTokens      int

	// Mail delivery
	SMTPHost       string
	SMTPPort       int
	EmailUser      string
	EmailPassword  string
	RecipientEmail string

	// Daily trigger
	ScheduleHour   int
	ScheduleMinute int
	Timezone       string

	// Metadata
	Debug    bool
	Version  string
	location *time.Location
}

// Location returns the resolved report timezone.
func (c *Cfg) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	return time.UTC
}
