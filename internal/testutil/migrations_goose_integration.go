//go:build integration

package testutil

import (
	"context"
	"time"

	pgrepo "github.com/Gunvolt24/checkout_gate/internal/repo/postgres"
)

// ApplyMigrationsGoose — схема корзин, остатков и промоакций тем же путём, что и при старте сервиса.
func ApplyMigrationsGoose(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return pgrepo.Migrate(ctx, dsn)
}
