package readstore

import (
	"errors"
	"log/slog"

	"laundryhub/internal/infra"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

func wrapReadErr(msg string, err error) error {
	kind := infra.KindDBFailure
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		kind = infra.KindNotFound
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}
