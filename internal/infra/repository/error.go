package repository

import (
	"errors"
	"log/slog"

	"laundryhub/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapPgErr classifies low-level pgx failures into repository error kinds.
func wrapPgErr(msg string, err error) error {
	return infra.WrapRepoErr(slog.Default(), classify(err), msg, err)
}

func classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
