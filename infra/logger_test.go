package infra

import (
	"context"
	"testing"

	"github.com/contractify/contractify-backend/config"
)

func TestInitLoggerClientWithoutEndpoint(t *testing.T) {
	client := InitLoggerClient(&config.EnvConfig{})
	if client == nil {
		t.Fatal("expected a fallback client when no OTLP endpoint is set")
	}

	ctx := context.Background()
	client.InfoWithContextf(ctx, "info %s", "message")
	client.WarningWithContextf(ctx, "warn %d", 1)
	client.ErrorWithContextf(ctx, nil, "error without cause")

	// Shutdown on the fallback client has no providers to flush and must be
	// safe to call from the signal path.
	client.Shutdown(ctx)
}
