// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Srejith/namemybaby/models"
)

// Audio keyspaces.
const (
	TableVoiceAudio      = "voice_audio_files"
	TableVoiceRecordings = "user_voice_recordings"
)

const (
	usersTable       = "users"
	preferencesTable = "user_preferences"
	reportsTable     = "name_reports"
)

var (
	userColumns        = []string{"user_id", "login", "password_hash", "name", "created_at"}
	nameColumns        = []string{"id", "name", "gender", "inspiration", "created_at"}
	reportColumns      = []string{"id", "user_id", "name", "report_content", "created_at", "updated_at"}
	audioColumns       = []string{"id", "user_id", "name", "voice_id", "audio_data", "created_at", "updated_at"}
	preferencesColumns = []string{
		"user_id", "user_name", "partner_name", "baby_gender", "birth_country",
		"living_country", "religion", "tone", "alphabet_preferences",
		"other_preferences", "number_of_names_to_generate", "updated_at",
	}
)

const (
	matchNameCaseInsensitive = "LOWER(name) = LOWER(?)"

	upsertPreferencesSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		user_name = excluded.user_name,
		partner_name = excluded.partner_name,
		baby_gender = excluded.baby_gender,
		birth_country = excluded.birth_country,
		living_country = excluded.living_country,
		religion = excluded.religion,
		tone = excluded.tone,
		alphabet_preferences = excluded.alphabet_preferences,
		other_preferences = excluded.other_preferences,
		number_of_names_to_generate = excluded.number_of_names_to_generate,
		updated_at = excluded.updated_at`

	upsertAudioSuffix = `ON CONFLICT (user_id, name, voice_id) DO UPDATE SET
		audio_data = excluded.audio_data,
		updated_at = excluded.updated_at`
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "password_hash", "name", "created_at").
		Values(user.Login, user.PasswordHash, user.Name, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// ── names ─────────────────────────────────────────────────────────────────────

func buildListNamesQuery(b sq.StatementBuilderType, bucket models.Bucket, userID int64) (string, []any, error) {
	return b.Select(nameColumns...).
		From(bucket.Table()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildGetNameQuery(b sq.StatementBuilderType, bucket models.Bucket, userID int64, id string) (string, []any, error) {
	return b.Select(nameColumns...).
		From(bucket.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildNameExistsQuery(b sq.StatementBuilderType, bucket models.Bucket, userID int64, name string) (string, []any, error) {
	return b.Select("1").
		From(bucket.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(matchNameCaseInsensitive, name).
		Limit(1).
		ToSql()
}

func buildInsertNameQuery(b sq.StatementBuilderType, bucket models.Bucket, userID int64, item models.NameItem) (string, []any, error) {
	return b.Insert(bucket.Table()).
		Columns("id", "user_id", "name", "gender", "inspiration", "created_at").
		Values(item.ID, userID, item.Name, nullString(string(item.Gender)), nullString(item.Inspiration), item.CreatedAt).
		ToSql()
}

func buildDeleteNameQuery(b sq.StatementBuilderType, bucket models.Bucket, userID int64, id string) (string, []any, error) {
	return b.Delete(bucket.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── preferences ───────────────────────────────────────────────────────────────

func buildLoadPreferencesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(preferencesColumns...).
		From(preferencesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSavePreferencesQuery(b sq.StatementBuilderType, p models.UserPreferences) (string, []any, error) {
	return b.Insert(preferencesTable).
		Columns(preferencesColumns...).
		Values(
			p.UserID, p.UserName, p.PartnerName, p.BabyGender, p.BirthCountry,
			p.LivingCountry, p.Religion, p.Tone, p.AlphabetPreferences,
			p.OtherPreferences, p.NumberOfNamesToGenerate, p.UpdatedAt,
		).
		Suffix(upsertPreferencesSuffix).
		ToSql()
}

// ── reports ───────────────────────────────────────────────────────────────────

func buildLatestReportByNameQuery(b sq.StatementBuilderType, userID int64, name string) (string, []any, error) {
	return b.Select(reportColumns...).
		From(reportsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(matchNameCaseInsensitive, name).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
}

func buildGetReportByIDQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.Select(reportColumns...).
		From(reportsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListReportsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(reportColumns...).
		From(reportsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildInsertReportQuery(b sq.StatementBuilderType, r models.NameReport) (string, []any, error) {
	return b.Insert(reportsTable).
		Columns(reportColumns...).
		Values(r.ID, r.UserID, r.Name, r.ReportContent, r.CreatedAt, r.UpdatedAt).
		ToSql()
}

func buildUpdateReportContentQuery(b sq.StatementBuilderType, userID int64, id, content string, updatedAt time.Time) (string, []any, error) {
	return b.Update(reportsTable).
		Set("report_content", content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteReportQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.Delete(reportsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── audio ─────────────────────────────────────────────────────────────────────

func buildGetAudioQuery(b sq.StatementBuilderType, table string, key models.AudioKey) (string, []any, error) {
	return b.Select(audioColumns...).
		From(table).
		Where(sq.Eq{"user_id": key.UserID}).
		Where(sq.Eq{"name": key.Name}).
		Where(sq.Eq{"voice_id": key.VoiceID}).
		ToSql()
}

func buildSaveAudioQuery(b sq.StatementBuilderType, table string, entry models.AudioEntry) (string, []any, error) {
	return b.Insert(table).
		Columns(audioColumns...).
		Values(entry.ID, entry.Key.UserID, entry.Key.Name, entry.Key.VoiceID, entry.Data, entry.CreatedAt, entry.UpdatedAt).
		Suffix(upsertAudioSuffix).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
