package bootstrap

import (
	"log/slog"

	"github.com/Yiqing888/deadlydelivery.app/internal/config"
	"github.com/Yiqing888/deadlydelivery.app/internal/logger"
)

// SetupLogger initializes the default slog logger from the server config
func SetupLogger(cfg *config.Config) *slog.Logger {
	// Source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"risk_config", cfg.RiskConfigPath,
		"catalog_dir", cfg.CatalogDir,
		"cache_size", cfg.ResultCacheSize,
		"cache_ttl", cfg.ResultCacheTTL)

	return l
}
