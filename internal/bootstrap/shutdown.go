package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BuyerMerchant_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	Repositories *Repositories
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish
// their saves, and then closes the stores. Errors are logged and do not stop
// the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Repositories != nil {
		slog.Info(LogMsgClosingStores)
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
