package config

import "time"

const (
	// Configuration file paths
	ConfigPathRisk       = "configs/risk.yaml"
	ConfigPathCatalogDir = "configs/catalog"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort               = 8080
	DefaultResultCacheSize    = 512
	DefaultResultCacheTTL     = 10 * time.Minute
	DefaultRateLimitPerWindow = 1000
	DefaultRateLimitWindow    = 5 * time.Minute
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultAPIURL             = "http://localhost:8080"
	DefaultDiscordHealthPort  = 8082
)

// Example values shipped in .env.example that must never reach production
const (
	ExampleAPIKey       = "generate_with_openssl_rand_hex_32"
	ExampleDiscordToken = "your_discord_bot_token"
)
