// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-leave-desk/models"
)

var (
	userColumns = []string{
		"user_id", "email", "password_hash", "first_name", "last_name",
		"is_admin", "email_verified", "access_level",
		"trial_started_at", "trial_expiry", "subscription_expiry",
		"created_at", "last_login_at",
	}

	pendingVerificationColumns = []string{
		"id", "email", "first_name", "last_name", "password_hash", "token_hash",
		"access_code", "trial_expiry", "access_level", "created_at", "expires_at",
	}

	sessionColumns = []string{
		"id", "token_hash", "user_id", "expires_at", "ip_address", "user_agent", "created_at",
	}

	accessCodeColumns = []string{
		"id", "code", "description", "duration", "duration_type", "max_uses",
		"current_uses", "is_active", "created_by", "created_at", "expires_at",
	}

	passwordResetColumns = []string{
		"id", "email", "token_hash", "expires_at", "used_at", "created_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).From("users").Where(where).ToSql()
}

func buildUserExistsQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("COUNT(*)").From("users").Where(sq.Eq{"email": normalizeEmail(email)}).ToSql()
}

func buildInsertUserFromPendingQuery(b sq.StatementBuilderType, p models.PendingVerification, now time.Time) (string, []any, error) {
	return b.Insert("users").
		Columns("email", "password_hash", "first_name", "last_name", "is_admin", "email_verified",
			"access_level", "trial_started_at", "trial_expiry", "created_at").
		Values(normalizeEmail(p.Email), p.PasswordHash, p.FirstName, p.LastName, false, true,
			p.AccessLevel, now, p.TrialExpiry, now).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpdateLastLoginQuery(b sq.StatementBuilderType, userID int64, at time.Time) (string, []any, error) {
	return b.Update("users").Set("last_login_at", at).Where(sq.Eq{"user_id": userID}).ToSql()
}

func buildSetSubscriptionQuery(b sq.StatementBuilderType, userID int64, expiry *time.Time, level models.AccessLevel) (string, []any, error) {
	return b.Update("users").
		Set("subscription_expiry", expiry).
		Set("access_level", level).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSetAdminQuery(b sq.StatementBuilderType, email string, isAdmin bool, level models.AccessLevel) (string, []any, error) {
	return b.Update("users").
		Set("is_admin", isAdmin).
		Set("access_level", level).
		Where(sq.Eq{"email": normalizeEmail(email)}).
		ToSql()
}

func buildUpdatePasswordByEmailQuery(b sq.StatementBuilderType, email, passwordHash string) (string, []any, error) {
	return b.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"email": normalizeEmail(email)}).
		Suffix("RETURNING user_id").
		ToSql()
}

// ── pending verifications ─────────────────────────────────────────────────────

func buildDeleteExpiredPendingForEmailQuery(b sq.StatementBuilderType, email string, now time.Time) (string, []any, error) {
	return b.Delete("pending_verifications").
		Where(sq.Eq{"email": normalizeEmail(email)}).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

func buildInsertPendingQuery(b sq.StatementBuilderType, p models.PendingVerification) (string, []any, error) {
	return b.Insert("pending_verifications").
		Columns("email", "first_name", "last_name", "password_hash", "token_hash",
			"access_code", "trial_expiry", "access_level", "created_at", "expires_at").
		Values(normalizeEmail(p.Email), p.FirstName, p.LastName, p.PasswordHash, p.TokenHash,
			p.AccessCode, p.TrialExpiry, p.AccessLevel, p.CreatedAt, p.ExpiresAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildCountLivePendingQuery(b sq.StatementBuilderType, email string, now time.Time) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("pending_verifications").
		Where(sq.Eq{"email": normalizeEmail(email)}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

// buildClaimPendingQuery deletes the live record for tokenHash and returns
// it, so two concurrent consumers can never both succeed.
func buildClaimPendingQuery(b sq.StatementBuilderType, tokenHash string, now time.Time) (string, []any, error) {
	return b.Delete("pending_verifications").
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		Suffix(returning(pendingVerificationColumns)).
		ToSql()
}

func buildDeleteExpiredPendingQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete("pending_verifications").Where(sq.LtOrEq{"expires_at": now}).ToSql()
}

// ── sessions ──────────────────────────────────────────────────────────────────

func buildInsertSessionQuery(b sq.StatementBuilderType, s models.Session) (string, []any, error) {
	return b.Insert("sessions").
		Columns("token_hash", "user_id", "expires_at", "ip_address", "user_agent", "created_at").
		Values(s.TokenHash, s.UserID, s.ExpiresAt, s.IPAddress, s.UserAgent, s.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindSessionQuery(b sq.StatementBuilderType, tokenHash string, now time.Time) (string, []any, error) {
	return b.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

func buildDeleteSessionsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Delete("sessions").Where(where).ToSql()
}

// ── access codes ──────────────────────────────────────────────────────────────

func buildInsertAccessCodeQuery(b sq.StatementBuilderType, c models.AccessCode) (string, []any, error) {
	return b.Insert("access_codes").
		Columns("code", "description", "duration", "duration_type", "max_uses",
			"current_uses", "is_active", "created_by", "created_at", "expires_at").
		Values(normalizeAccessCode(c.Code), c.Description, c.Duration, c.DurationType, c.MaxUses,
			0, c.IsActive, c.CreatedBy, c.CreatedAt, c.ExpiresAt).
		Suffix(returning(accessCodeColumns)).
		ToSql()
}

// buildRedeemAccessCodeQuery is the ledger's conditional increment: it only
// matches while the code is active, has uses left and has not expired.
func buildRedeemAccessCodeQuery(b sq.StatementBuilderType, code string, now time.Time) (string, []any, error) {
	return b.Update("access_codes").
		Set("current_uses", sq.Expr("current_uses + 1")).
		Where(sq.Eq{"code": normalizeAccessCode(code), "is_active": true}).
		Where(sq.Or{sq.Eq{"max_uses": nil}, sq.Expr("current_uses < max_uses")}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now}}).
		Suffix(returning(accessCodeColumns)).
		ToSql()
}

func buildFindAccessCodeQuery(b sq.StatementBuilderType, code string) (string, []any, error) {
	return b.Select(accessCodeColumns...).
		From("access_codes").
		Where(sq.Eq{"code": normalizeAccessCode(code)}).
		ToSql()
}

func buildListAccessCodesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(accessCodeColumns...).From("access_codes").OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildDeactivateAccessCodeQuery(b sq.StatementBuilderType, code string) (string, []any, error) {
	return b.Update("access_codes").
		Set("is_active", false).
		Where(sq.Eq{"code": normalizeAccessCode(code)}).
		ToSql()
}

// ── password resets ───────────────────────────────────────────────────────────

func buildUpsertPasswordResetQuery(b sq.StatementBuilderType, r models.PasswordReset) (string, []any, error) {
	return b.Insert("password_resets").
		Columns("email", "token_hash", "expires_at", "used_at", "created_at").
		Values(normalizeEmail(r.Email), r.TokenHash, r.ExpiresAt, nil, r.CreatedAt).
		Suffix("ON CONFLICT (email) DO UPDATE SET " +
			"token_hash = excluded.token_hash, expires_at = excluded.expires_at, " +
			"used_at = NULL, created_at = excluded.created_at").
		ToSql()
}

func buildFindPasswordResetQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(passwordResetColumns...).
		From("password_resets").
		Where(sq.Eq{"email": normalizeEmail(email)}).
		ToSql()
}

// buildClaimPasswordResetQuery marks a usable request as used and returns its
// email; a second claim of the same token matches nothing.
func buildClaimPasswordResetQuery(b sq.StatementBuilderType, tokenHash string, now time.Time) (string, []any, error) {
	return b.Update("password_resets").
		Set("used_at", now).
		Where(sq.Eq{"token_hash": tokenHash, "used_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		Suffix("RETURNING email").
		ToSql()
}

func buildDeleteExpiredPasswordResetsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete("password_resets").
		Where(sq.Or{sq.LtOrEq{"expires_at": now}, sq.NotEq{"used_at": nil}}).
		ToSql()
}
