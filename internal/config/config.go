package config

import (
	"os"
	"strings"
)

const (
	defaultPort        = "5000"
	defaultDatabaseURL = "lostfound.db"
	defaultUploadDir   = "./uploads"
)

// Config holds process-level settings, loaded from the environment.
type Config struct {
	Port        string
	DatabaseURL string   // postgres DSN or path to a local sqlite file
	UploadDir   string   // directory for uploaded images, created on demand
	CORSOrigins []string // extra allowed origins beyond local development
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", defaultPort),
		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		UploadDir:   getenv("UPLOAD_DIR", defaultUploadDir),
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
