package readstore

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// withReadRetry retries a read-only query once when the failure looks like a
// transient connection problem. Writes never go through this path.
func withReadRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil || !isTransient(err) {
		return err
	}

	slog.Warn("retrying read after transient error", "error", err)
	return fn(ctx)
}

func isTransient(err error) bool {
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
