// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/models"
)

// nameRepository implements [NameRepository]. Each bucket is its own table
// with a unique index on (user_id, LOWER(name)).
type nameRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewNameRepository constructs a [NameRepository]. ids produces the id of
// every inserted row.
func NewNameRepository(db *DB, ids IDGenerator, logger *logger.Logger) NameRepository {
	logger.Debug().Msg("creating name repository")
	return &nameRepository{
		db:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanName(s rowScanner) (models.NameItem, error) {
	var (
		item        models.NameItem
		gender      sql.NullString
		inspiration sql.NullString
	)
	if err := s.Scan(&item.ID, &item.Name, &gender, &inspiration, &item.CreatedAt); err != nil {
		return models.NameItem{}, err
	}
	item.Gender = models.Gender(gender.String)
	item.Inspiration = inspiration.String

	return item, nil
}

// List returns the names of a bucket, oldest first.
func (r *nameRepository) List(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error) {
	log := logger.FromContext(ctx)

	if !bucket.Valid() {
		return nil, models.ErrUnknownBucket
	}

	query, args, err := buildListNamesQuery(r.db.builder, bucket, userID)
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*nameRepository.List").
			Str("bucket", string(bucket)).
			Int64("user_id", userID).
			Msg("failed to list names")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.NameItem, 0, 16)
	for rows.Next() {
		item, scanErr := scanName(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*nameRepository.List").
				Str("bucket", string(bucket)).
				Msg("failed to scan name row")
			return nil, errors.Join(ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*nameRepository.List").
			Msg("error occurred during rows iteration")
		return nil, errors.Join(ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Get returns the name with the given id or [ErrNameNotFound].
func (r *nameRepository) Get(ctx context.Context, bucket models.Bucket, userID int64, id string) (models.NameItem, error) {
	if !bucket.Valid() {
		return models.NameItem{}, models.ErrUnknownBucket
	}

	return r.getName(ctx, r.db, bucket, userID, id)
}

// Exists reports whether name is in the bucket, ignoring case.
func (r *nameRepository) Exists(ctx context.Context, bucket models.Bucket, userID int64, name string) (bool, error) {
	if !bucket.Valid() {
		return false, models.ErrUnknownBucket
	}

	return r.exists(ctx, r.db, bucket, userID, strings.TrimSpace(name))
}

// Add inserts item with a fresh id. A name that is already in the bucket
// yields a [*DuplicateNameError].
func (r *nameRepository) Add(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error) {
	if !bucket.Valid() {
		return models.NameItem{}, models.ErrUnknownBucket
	}

	item = item.Normalize()

	found, err := r.exists(ctx, r.db, bucket, userID, item.Name)
	if err != nil {
		return models.NameItem{}, err
	}
	if found {
		return models.NameItem{}, &DuplicateNameError{Name: item.Name, Bucket: bucket}
	}

	return r.insert(ctx, r.db, bucket, userID, item)
}

// AddBatch inserts items inside one transaction. Names that already exist,
// or repeat within the batch, are skipped and counted. gender applies to
// items without their own.
func (r *nameRepository) AddBatch(ctx context.Context, bucket models.Bucket, userID int64, items []models.NameItem, gender models.Gender) (models.BatchAddResult, error) {
	log := logger.FromContext(ctx)

	if !bucket.Valid() {
		return models.BatchAddResult{}, models.ErrUnknownBucket
	}

	result := models.BatchAddResult{Names: make([]models.NameItem, 0, len(items))}
	if len(items) == 0 {
		return result, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*nameRepository.AddBatch").
			Msg("failed to begin transaction")
		return models.BatchAddResult{}, r.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = item.Normalize()
		if item.Name == "" {
			continue
		}
		if item.Gender == "" {
			item.Gender = gender
		}

		key := strings.ToLower(item.Name)
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		found, existsErr := r.exists(ctx, tx, bucket, userID, item.Name)
		if existsErr != nil {
			return models.BatchAddResult{}, existsErr
		}
		if found {
			result.Skipped++
			continue
		}

		inserted, insertErr := r.insert(ctx, tx, bucket, userID, item)
		if insertErr != nil {
			return models.BatchAddResult{}, insertErr
		}
		result.Names = append(result.Names, inserted)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*nameRepository.AddBatch").
			Int("count", len(result.Names)).
			Msg("failed to commit transaction")
		return models.BatchAddResult{}, r.db.wrapError(ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "*nameRepository.AddBatch").
		Str("bucket", string(bucket)).
		Int("inserted", len(result.Names)).
		Int("skipped", result.Skipped).
		Msg("batch saved")

	return result, nil
}

// Delete removes the name with the given id. Returns [ErrNameNotFound] when
// nothing was deleted.
func (r *nameRepository) Delete(ctx context.Context, bucket models.Bucket, userID int64, id string) error {
	if !bucket.Valid() {
		return models.ErrUnknownBucket
	}

	return r.deleteName(ctx, r.db, bucket, userID, id)
}

// Move transfers a name between buckets in one transaction:
// the source row is read (or taken from the request when it was never
// saved), the target is checked for the name, the name is inserted into the
// target with a new id and the source row is deleted. Any failure rolls the
// whole move back.
//
// If a transaction cannot be started, the steps run without one and a failed
// source delete removes the inserted row again.
func (r *nameRepository) Move(ctx context.Context, req models.MoveRequest) (models.NameItem, error) {
	log := logger.FromContext(ctx)

	if req.From == req.To {
		return models.NameItem{}, ErrSameBucket
	}
	if !req.From.Valid() || !req.To.Valid() {
		return models.NameItem{}, models.ErrUnknownBucket
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		if ctx.Err() != nil {
			return models.NameItem{}, ctx.Err()
		}
		log.Warn().Err(err).
			Str("func", "*nameRepository.Move").
			Msg("transactions unavailable, moving without one")
		return r.moveWithoutTx(ctx, req)
	}
	defer tx.Rollback()

	source, stored, err := r.resolveSource(ctx, tx, req)
	if err != nil {
		return models.NameItem{}, err
	}

	found, err := r.exists(ctx, tx, req.To, req.UserID, source.Name)
	if err != nil {
		return models.NameItem{}, err
	}
	if found {
		return models.NameItem{}, &DuplicateNameError{Name: source.Name, Bucket: req.To}
	}

	moved, err := r.insert(ctx, tx, req.To, req.UserID, source)
	if err != nil {
		return models.NameItem{}, err
	}

	if stored {
		if err = r.deleteName(ctx, tx, req.From, req.UserID, source.ID); err != nil {
			log.Err(err).
				Str("func", "*nameRepository.Move").
				Str("from", string(req.From)).
				Str("to", string(req.To)).
				Msg("failed to delete source, rolling back")
			return models.NameItem{}, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*nameRepository.Move").
			Msg("failed to commit transaction")
		return models.NameItem{}, r.db.wrapError(ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*nameRepository.Move").
		Str("from", string(req.From)).
		Str("to", string(req.To)).
		Str("name", moved.Name).
		Msg("name moved")

	return moved, nil
}

func (r *nameRepository) moveWithoutTx(ctx context.Context, req models.MoveRequest) (models.NameItem, error) {
	log := logger.FromContext(ctx)

	source, stored, err := r.resolveSource(ctx, r.db, req)
	if err != nil {
		return models.NameItem{}, err
	}

	found, err := r.exists(ctx, r.db, req.To, req.UserID, source.Name)
	if err != nil {
		return models.NameItem{}, err
	}
	if found {
		return models.NameItem{}, &DuplicateNameError{Name: source.Name, Bucket: req.To}
	}

	moved, err := r.insert(ctx, r.db, req.To, req.UserID, source)
	if err != nil {
		return models.NameItem{}, err
	}

	if !stored {
		return moved, nil
	}

	if deleteErr := r.deleteName(ctx, r.db, req.From, req.UserID, source.ID); deleteErr != nil {
		if undoErr := r.deleteName(ctx, r.db, req.To, req.UserID, moved.ID); undoErr != nil {
			log.Err(undoErr).
				Str("func", "*nameRepository.moveWithoutTx").
				Str("to", string(req.To)).
				Str("id", moved.ID).
				Msg("failed to remove inserted name after failed move")
		}
		return models.NameItem{}, deleteErr
	}

	return moved, nil
}

// resolveSource loads the source row of a move. When the row does not exist
// but the request carries a name, the request fields are used and stored is
// false.
func (r *nameRepository) resolveSource(ctx context.Context, q querier, req models.MoveRequest) (item models.NameItem, stored bool, err error) {
	if req.ID != "" {
		item, err = r.getName(ctx, q, req.From, req.UserID, req.ID)
		if err == nil {
			return item, true, nil
		}
		if !errors.Is(err, ErrNameNotFound) {
			return models.NameItem{}, false, err
		}
	}

	item = models.NameItem{
		Name:        req.Name,
		Gender:      req.Gender,
		Inspiration: req.Inspiration,
	}.Normalize()
	if item.Name == "" {
		return models.NameItem{}, false, ErrNameNotFound
	}

	return item, false, nil
}

func (r *nameRepository) getName(ctx context.Context, q querier, bucket models.Bucket, userID int64, id string) (models.NameItem, error) {
	query, args, err := buildGetNameQuery(r.db.builder, bucket, userID, id)
	if err != nil {
		return models.NameItem{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	item, err := scanName(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NameItem{}, ErrNameNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*nameRepository.getName").
			Str("bucket", string(bucket)).
			Str("id", id).
			Msg("failed to get name")
		return models.NameItem{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *nameRepository) exists(ctx context.Context, q querier, bucket models.Bucket, userID int64, name string) (bool, error) {
	query, args, err := buildNameExistsQuery(r.db.builder, bucket, userID, name)
	if err != nil {
		return false, errors.Join(ErrBuildingSQLQuery, err)
	}

	var one int
	err = q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*nameRepository.exists").
			Str("bucket", string(bucket)).
			Msg("failed to check name existence")
		return false, r.db.wrapError(ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *nameRepository) insert(ctx context.Context, q querier, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error) {
	item.ID = r.ids.Generate()
	item.CreatedAt = r.now()

	query, args, err := buildInsertNameQuery(r.db.builder, bucket, userID, item)
	if err != nil {
		return models.NameItem{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.NameItem{}, &DuplicateNameError{Name: item.Name, Bucket: bucket}
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*nameRepository.insert").
			Str("bucket", string(bucket)).
			Msg("failed to insert name")
		return models.NameItem{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return item, nil
}

func (r *nameRepository) deleteName(ctx context.Context, q querier, bucket models.Bucket, userID int64, id string) error {
	query, args, err := buildDeleteNameQuery(r.db.builder, bucket, userID, id)
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*nameRepository.deleteName").
			Str("bucket", string(bucket)).
			Str("id", id).
			Msg("failed to delete name")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNameNotFound
	}

	return nil
}
