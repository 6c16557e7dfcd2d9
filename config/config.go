package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	LogLevel    string
	// Remote libsql database; DBPath is ignored when set
	TursoDatabaseURL string
	TursoAuthToken   string
	// Slot policy, in minutes
	MinSlotMinutes       int
	PreferredSlotMinutes int
	// Constraint snapshot cache
	CacheEnabled bool
	CacheSize    int
	// Per-IP request rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
	// Other
	AllowedOrigins []string
	SeedSampleData bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		DBPath:               getEnv("DB_PATH", "db/app.db"),
		Environment:          environment,
		LogLevel:             getEnv("LOG_LEVEL", ""),
		TursoDatabaseURL:     getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:       os.Getenv("TURSO_AUTH_TOKEN"),
		MinSlotMinutes:       getEnvInt("SLOT_MIN_MINUTES", 20),
		PreferredSlotMinutes: getEnvInt("SLOT_PREFERRED_MINUTES", 60),
		CacheEnabled:         getEnvBool("CACHE_ENABLED", true),
		CacheSize:            getEnvInt("CACHE_SIZE", 1024),
		RateLimitRPS:         getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:       getEnvInt("RATE_LIMIT_BURST", 20),
		AllowedOrigins:       strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SeedSampleData:       getEnvBool("SEED_SAMPLE_DATA", environment == "development"),
	}
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks the settings that would otherwise fail at request time
func (c *Config) Validate() error {
	if c.MinSlotMinutes <= 0 || c.PreferredSlotMinutes <= 0 {
		return fmt.Errorf("SLOT_MIN_MINUTES and SLOT_PREFERRED_MINUTES must be positive")
	}
	if c.MinSlotMinutes > c.PreferredSlotMinutes {
		return fmt.Errorf("SLOT_MIN_MINUTES (%d) must not exceed SLOT_PREFERRED_MINUTES (%d)", c.MinSlotMinutes, c.PreferredSlotMinutes)
	}
	if c.CacheEnabled && c.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive when the cache is enabled")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] %s=%q is not an integer, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[WARNING] %s=%q is not a number, using %g", key, value, defaultValue)
		return defaultValue
	}
	return f
}
