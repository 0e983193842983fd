package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file.
const (
	EnvOrigin        = "SITE_ORIGIN"
	EnvSubdomainBase = "SUBDOMAIN_BASE"
)

// loadEnvFiles loads .env and .env.local from the working directory when
// present. Existing process environment variables are never overwritten.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		_ = godotenv.Load(name)
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvOrigin)); v != "" {
		cfg.Site.Origin = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSubdomainBase)); v != "" {
		cfg.Site.SubdomainBase = v
	}
}

// expandEnv substitutes $NAME and ${NAME} references. Shell special
// parameters such as $1 are left as written so dollar amounts in copy text
// survive.
func expandEnv(s string) string {
	return os.Expand(s, func(name string) string {
		c := name[0]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return os.Getenv(name)
		}
		return "$" + name
	})
}
