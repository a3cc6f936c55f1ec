package logger

// Accepted LOG_LEVEL values. "warning" is an alias for "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service names stamped on every record, one per binary
const (
	ServiceNameAPI     = "deadlydelivery-api"
	ServiceNameDiscord = "deadlydelivery-discord"

	DefaultServiceName = ServiceNameAPI
	DefaultVersion     = "dev"
)

const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys shared by every handler and the request middleware
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
