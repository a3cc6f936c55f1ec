package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the environment variables the API server cannot start without
var RequiredEnvVars = []string{
	"API_KEY",
}

// DiscordRequiredEnvVars lists the environment variables the Discord bot cannot start without
var DiscordRequiredEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
	"API_KEY",
}

// ValidateEnv checks that every variable in required is set and non-empty
func ValidateEnv(required []string) error {
	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks required variables and returns warnings
// for example values copied from .env.example
func ValidateEnvWithWarnings(required []string) ([]string, error) {
	if err := ValidateEnv(required); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv("DISCORD_TOKEN") == ExampleDiscordToken {
		warnings = append(warnings, "DISCORD_TOKEN appears to be using the example value")
	}

	return warnings, nil
}
