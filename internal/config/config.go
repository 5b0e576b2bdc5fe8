package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Attribute store backends
const (
	StoreNone  = "none"
	StoreNeo4j = "neo4j"
	StoreRedis = "redis"
)

// Config contains runtime settings for the job board
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	Placeholder struct {
		BaseURL string
	}

	// AttributeStore selects where synthetic job fields are kept; "none" regenerates them per fetch
	AttributeStore string

	Neo4j struct {
		URI      string
		Username string
		Password string
	}
	Redis struct {
		URL string
		TTL time.Duration
	}
	Sheets struct {
		CredentialsPath string
	}

	SessionTTL time.Duration
}

// Load reads an optional .env file and then populates config from environment variables
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		LogLevel:       "info",
		Host:           "0.0.0.0",
		Port:           "8080",
		AttributeStore: StoreNone,
		SessionTTL:     30 * time.Minute,
	}
	cfg.Placeholder.BaseURL = "https://jsonplaceholder.typicode.com"
	cfg.Redis.TTL = 30 * 24 * time.Hour

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HTTP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("PLACEHOLDER_BASE_URL"); v != "" {
		cfg.Placeholder.BaseURL = v
	}

	if v := os.Getenv("ATTRIBUTE_STORE"); v != "" {
		cfg.AttributeStore = strings.ToLower(strings.TrimSpace(v))
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Redis.URL = os.Getenv("REDIS_URL")
	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	var invalid []string

	if v := os.Getenv("REDIS_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, fmt.Sprintf("REDIS_TTL=%q", v))
		} else {
			cfg.Redis.TTL = d
		}
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, fmt.Sprintf("SESSION_TTL=%q", v))
		} else {
			cfg.SessionTTL = d
		}
	}

	var missingVars []string

	switch cfg.AttributeStore {
	case StoreNone:
	case StoreNeo4j:
		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}
		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}
		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	case StoreRedis:
		if cfg.Redis.URL == "" {
			missingVars = append(missingVars, "REDIS_URL")
		}
	default:
		invalid = append(invalid, fmt.Sprintf("ATTRIBUTE_STORE=%q", cfg.AttributeStore))
	}

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
