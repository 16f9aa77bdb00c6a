package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingEmailJSCredentials is returned by LoadConfig when any of the
// three provider identifiers is absent from both the secrets file and env.
var ErrMissingEmailJSCredentials = errors.New("emailjs credentials are not configured")

type Config struct {
	Port        string
	GinMode     string
	AssetsDir   string
	SecretsFile string
	// Allowed CORS origins in addition to same-origin requests
	CORSAllowedOrigins []string
	// EmailJS Configuration (secret store)
	EmailJSServiceID      string
	EmailJSTemplateID     string
	EmailJSUserID         string
	EmailJSTimeoutSeconds int // 0 keeps the HTTP client default (no timeout)
	// Contact form behaviour
	ContactStrictEmail bool
	// Image embedding
	ImageMaxDimension    int
	ImageCacheTTLMinutes int
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; a missing file is fine in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		AssetsDir:   strings.TrimRight(getEnv("ASSETS_DIR", "assets"), "/"),
		SecretsFile: getEnv("SECRETS_FILE", "secrets.toml"),
		// Comma separated list, e.g. "https://example.com,https://www.example.com"
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		// EmailJS Configuration
		EmailJSTimeoutSeconds: getEnvInt("EMAILJS_TIMEOUT_SECONDS", 0),
		ContactStrictEmail:    getEnvBool("CONTACT_STRICT_EMAIL", false),
		// Image embedding
		ImageMaxDimension:    getEnvInt("IMAGE_MAX_DIMENSION", 800),
		ImageCacheTTLMinutes: getEnvInt("IMAGE_CACHE_TTL_MINUTES", 10),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if err := loadSecrets(cfg); err != nil {
		return nil, err
	}

	// Env vars win over the secrets file
	cfg.EmailJSServiceID = getEnv("EMAILJS_SERVICE_ID", cfg.EmailJSServiceID)
	cfg.EmailJSTemplateID = getEnv("EMAILJS_TEMPLATE_ID", cfg.EmailJSTemplateID)
	cfg.EmailJSUserID = getEnv("EMAILJS_USER_ID", cfg.EmailJSUserID)

	if missing := cfg.missingEmailJSKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMissingEmailJSCredentials, strings.Join(missing, ", "))
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// loadSecrets reads the [emailjs] table of the secrets file, if one exists.
//
//	[emailjs]
//	service_id = "service_xxx"
//	template_id = "template_xxx"
//	user_id = "public_key"
func loadSecrets(cfg *Config) error {
	if cfg.SecretsFile == "" {
		return nil
	}
	if _, err := os.Stat(cfg.SecretsFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.SecretsFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read secrets file %s: %w", cfg.SecretsFile, err)
	}

	cfg.EmailJSServiceID = strings.TrimSpace(v.GetString("emailjs.service_id"))
	cfg.EmailJSTemplateID = strings.TrimSpace(v.GetString("emailjs.template_id"))
	cfg.EmailJSUserID = strings.TrimSpace(v.GetString("emailjs.user_id"))
	return nil
}

func (c *Config) missingEmailJSKeys() []string {
	var missing []string
	if c.EmailJSServiceID == "" {
		missing = append(missing, "service_id")
	}
	if c.EmailJSTemplateID == "" {
		missing = append(missing, "template_id")
	}
	if c.EmailJSUserID == "" {
		missing = append(missing, "user_id")
	}
	return missing
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
