// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/migrations"
	"github.com/Srejith/namemybaby/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "deadlock wrapped", err: fmt.Errorf("q: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("w: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.False(t, isUniqueViolation(errors.New("x")))
}

func TestDuplicateNameError(t *testing.T) {
	err := error(&DuplicateNameError{Name: "Aria", Bucket: models.BucketGenerated})

	assert.Equal(t, `"Aria" already exists in Generated Names. Duplicate names are not allowed.`, err.Error())
	assert.ErrorIs(t, err, ErrNameAlreadyExists)
	assert.ErrorIs(t, fmt.Errorf("move: %w", err), ErrNameAlreadyExists)
	assert.NotErrorIs(t, err, ErrNameNotFound)
}

func TestNewDB_PlaceholderFollowsDialect(t *testing.T) {
	pg := newDB(nil, migrations.DialectPostgres, nil, logger.Nop())
	lite := newDB(nil, migrations.DialectSQLite, nil, logger.Nop())

	pgQuery, _, err := buildNameExistsQuery(pg.builder, models.BucketMaybe, 1, "Aria")
	require.NoError(t, err)
	liteQuery, _, err := buildNameExistsQuery(lite.builder, models.BucketMaybe, 1, "Aria")
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1 FROM maybe WHERE user_id = $1 AND LOWER(name) = LOWER($2) LIMIT 1", pgQuery)
	assert.Equal(t, "SELECT 1 FROM maybe WHERE user_id = ? AND LOWER(name) = LOWER(?) LIMIT 1", liteQuery)
	assert.Equal(t, migrations.DialectSQLite, lite.Dialect())
}

func TestWrapError(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())

	transient := db.wrapError(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.SerializationFailure})
	permanent := db.wrapError(ErrExecutingQuery, errors.New("bad"))

	assert.ErrorIs(t, transient, ErrStorageUnavailable)
	assert.ErrorIs(t, transient, ErrExecutingQuery)
	assert.NotErrorIs(t, permanent, ErrStorageUnavailable)
	assert.ErrorIs(t, permanent, ErrExecutingQuery)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "names.db", sqliteDSN("sqlite://names.db"))
	assert.Equal(t, "file:names.db?cache=shared", sqliteDSN("file:names.db?cache=shared"))
}
