// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/Srejith/namemybaby/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNameNotFound is returned when a name does not exist in the bucket.
	ErrNameNotFound = errors.New("name not found")

	// ErrNameAlreadyExists matches every [DuplicateNameError].
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrSameBucket is returned when a move names the same bucket twice.
	ErrSameBucket = errors.New("source and target bucket are the same")

	// ErrReportNotFound is returned when no report matches the lookup.
	ErrReportNotFound = errors.New("report not found")

	// ErrAudioNotFound is returned when no audio entry matches the key.
	ErrAudioNotFound = errors.New("audio not found")

	// ErrStorageUnavailable wraps driver errors classified as [Retryable].
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// DuplicateNameError reports that Name already exists in Bucket for the user.
type DuplicateNameError struct {
	Name   string
	Bucket models.Bucket
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("\"%s\" already exists in %s. Duplicate names are not allowed.", e.Name, e.Bucket.DisplayName())
}

// Is makes errors.Is(err, ErrNameAlreadyExists) hold for every duplicate.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrNameAlreadyExists
}
