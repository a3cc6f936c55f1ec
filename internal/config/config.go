package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the API server configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication

	TrustedProxies []string

	RiskConfigPath string
	CatalogDir     string

	ResultCacheSize int
	ResultCacheTTL  time.Duration

	RateLimitPerWindow int
	RateLimitWindow    time.Duration

	ShutdownTimeout time.Duration
}

// DiscordConfig holds the Discord bot configuration
type DiscordConfig struct {
	Token      string
	AppID      string
	DevGuildID string // register commands to one guild for fast iteration
	APIURL     string
	APIKey     string
	LogLevel   string
	LogFormat  string
	HealthPort int
	// ForceCommandUpdate overwrites slash commands even when unchanged
	ForceCommandUpdate bool
}

// Load loads the server configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		ServiceName:        getEnv("SERVICE_NAME", "deadlydelivery-api"),
		Version:            getEnv("VERSION", "dev"),
		APIKey:             getEnv("API_KEY", ""),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES"),
		RiskConfigPath:     getEnv("RISK_CONFIG_PATH", ConfigPathRisk),
		CatalogDir:         getEnv("CATALOG_DIR", ConfigPathCatalogDir),
		ResultCacheSize:    getEnvAsInt("RESULT_CACHE_SIZE", DefaultResultCacheSize),
		ResultCacheTTL:     getEnvAsDuration("RESULT_CACHE_TTL", DefaultResultCacheTTL),
		RateLimitPerWindow: getEnvAsInt("RATE_LIMIT_PER_WINDOW", DefaultRateLimitPerWindow),
		RateLimitWindow:    getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.ResultCacheSize < 1 {
		return nil, fmt.Errorf("RESULT_CACHE_SIZE must be positive, got %d", cfg.ResultCacheSize)
	}

	return cfg, nil
}

// LoadDiscord loads the Discord bot configuration from environment variables
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	cfg := &DiscordConfig{
		Token:      getEnv("DISCORD_TOKEN", ""),
		AppID:      getEnv("DISCORD_APP_ID", ""),
		DevGuildID: getEnv("DISCORD_DEV_GUILD_ID", ""),
		APIURL:     strings.TrimRight(getEnv("API_URL", DefaultAPIURL), "/"),
		APIKey:     getEnv("API_KEY", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		HealthPort: getEnvAsInt("DISCORD_HEALTH_PORT", DefaultDiscordHealthPort),

		ForceCommandUpdate: getEnv("DISCORD_FORCE_COMMAND_UPDATE", "") == "true",
	}

	if err := ValidateEnv(DiscordRequiredEnvVars); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.Duration variable such as "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
