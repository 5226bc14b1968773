package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"venue-booking/internal/database"
	"venue-booking/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translateError maps driver and ORM errors onto the errs taxonomy. Errors
// that already carry a category pass through unchanged; anything it does
// not recognise is returned as is for the service to classify.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrConstraint) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound("%v", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 23 is integrity constraint violation, class 22 is data exception.
		if strings.HasPrefix(pgErr.Code, "23") || strings.HasPrefix(pgErr.Code, "22") {
			return errs.Constraint("%s (SQLSTATE %s, table %q, column %q)",
				pgErr.Message, pgErr.Code, pgErr.TableName, pgErr.ColumnName)
		}
	}
	return err
}

// escapeLike quotes LIKE metacharacters so term matches as a literal
// substring.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// base carries the handle and default query timeout shared by every
// repository.
type base struct {
	db      *database.Database
	timeout time.Duration
}

func newBase(db *database.Database) base {
	return base{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
