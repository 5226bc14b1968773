package repository

import (
	"errors"
	"fmt"
	"testing"

	"venue-booking/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("connection refused")

	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, wantIs: errs.ErrNotFound},
		{name: "wrapped record not found", err: fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), wantIs: errs.ErrNotFound},
		{name: "not null", err: &pgconn.PgError{Code: "23502", ColumnName: "name", TableName: "venues"}, wantIs: errs.ErrConstraint},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, wantIs: errs.ErrConstraint},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, wantIs: errs.ErrConstraint},
		{name: "string too long", err: &pgconn.PgError{Code: "22001"}, wantIs: errs.ErrConstraint},
		{name: "hook constraint passes through", err: errs.Constraint("venue name is required"), wantIs: errs.ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.wantIs)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("unrecognised errors are untouched", func(t *testing.T) {
		assert.Same(t, plain, translateError(plain))
		deadlock := &pgconn.PgError{Code: "40P01"}
		assert.Same(t, deadlock, translateError(deadlock))
	})
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"Fillmore":   "Fillmore",
		"100%":       `100\%`,
		"a_b":        `a\_b`,
		`back\slash`: `back\\slash`,
		`%_\`:        `\%\_\\`,
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeLike(in), "input %q", in)
	}
}
