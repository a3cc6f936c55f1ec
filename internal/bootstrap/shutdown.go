package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that can be stopped gracefully
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish.
// Errors are logged rather than returned.
func GracefulShutdown(ctx context.Context, srv Stopper) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
		return
	}

	slog.Info(LogMsgServerStopped)
}
