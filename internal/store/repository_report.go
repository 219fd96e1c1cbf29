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

type reportRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewReportRepository constructs a [ReportRepository].
func NewReportRepository(db *DB, ids IDGenerator, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func scanReport(s rowScanner) (models.NameReport, error) {
	var r models.NameReport
	err := s.Scan(&r.ID, &r.UserID, &r.Name, &r.ReportContent, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// Upsert overwrites the content of the latest report for name (compared
// case-insensitively) or creates a new one.
func (r *reportRepository) Upsert(ctx context.Context, userID int64, name, content string) (models.NameReport, error) {
	log := logger.FromContext(ctx)
	name = strings.TrimSpace(name)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Upsert").Msg("failed to begin transaction")
		return models.NameReport{}, r.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	report, err := r.latestByName(ctx, tx, userID, name)
	now := r.now()
	switch {
	case err == nil:
		query, args, buildErr := buildUpdateReportContentQuery(r.db.builder, userID, report.ID, content, now)
		if buildErr != nil {
			return models.NameReport{}, errors.Join(ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*reportRepository.Upsert").Str("id", report.ID).Msg("failed to update report")
			return models.NameReport{}, r.db.wrapError(ErrExecutingStatement, err)
		}
		report.ReportContent = content
		report.UpdatedAt = now

	case errors.Is(err, ErrReportNotFound):
		report = models.NameReport{
			ID:            r.ids.Generate(),
			UserID:        userID,
			Name:          name,
			ReportContent: content,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		query, args, buildErr := buildInsertReportQuery(r.db.builder, report)
		if buildErr != nil {
			return models.NameReport{}, errors.Join(ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*reportRepository.Upsert").Msg("failed to insert report")
			return models.NameReport{}, r.db.wrapError(ErrExecutingStatement, err)
		}

	default:
		return models.NameReport{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*reportRepository.Upsert").Msg("failed to commit transaction")
		return models.NameReport{}, r.db.wrapError(ErrCommitingTransaction, commitErr)
	}

	return report, nil
}

// List returns all reports of the user, newest first.
func (r *reportRepository) List(ctx context.Context, userID int64) ([]models.NameReport, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReportsQuery(r.db.builder, userID)
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.List").Int64("user_id", userID).Msg("failed to list reports")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	reports := make([]models.NameReport, 0, 16)
	for rows.Next() {
		report, scanErr := scanReport(rows)
		if scanErr != nil {
			return nil, errors.Join(ErrScanningRow, scanErr)
		}
		reports = append(reports, report)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, errors.Join(ErrScanningRows, rowsErr)
	}

	return reports, nil
}

// GetByName returns the latest report for name, compared case-insensitively.
func (r *reportRepository) GetByName(ctx context.Context, userID int64, name string) (models.NameReport, error) {
	return r.latestByName(ctx, r.db, userID, strings.TrimSpace(name))
}

func (r *reportRepository) GetByID(ctx context.Context, userID int64, id string) (models.NameReport, error) {
	query, args, err := buildGetReportByIDQuery(r.db.builder, userID, id)
	if err != nil {
		return models.NameReport{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, r.db, "*reportRepository.GetByID", query, args)
}

// Delete removes a report. Returns [ErrReportNotFound] when nothing matched.
func (r *reportRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteReportQuery(r.db.builder, userID, id)
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Delete").Str("id", id).Msg("failed to delete report")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	return nil
}

func (r *reportRepository) latestByName(ctx context.Context, q querier, userID int64, name string) (models.NameReport, error) {
	query, args, err := buildLatestReportByNameQuery(r.db.builder, userID, name)
	if err != nil {
		return models.NameReport{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, q, "*reportRepository.latestByName", query, args)
}

func (r *reportRepository) queryOne(ctx context.Context, q querier, funcName, query string, args []any) (models.NameReport, error) {
	report, err := scanReport(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NameReport{}, ErrReportNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query report")
		return models.NameReport{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return report, nil
}
