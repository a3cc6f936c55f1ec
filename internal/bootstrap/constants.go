package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingService      = "Starting Deadly Delivery EV service"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgRiskConfigLoaded     = "Risk config loaded"
	LogMsgCatalogLoaded        = "Catalog loaded"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// Error messages for startup
const (
	ErrMsgFailedLoadRiskConfig = "failed to load risk config"
	ErrMsgFailedLoadCatalog    = "failed to load catalog"
)
