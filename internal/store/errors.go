// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when inserting a user whose email
	// (compared lower-cased) is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPendingVerificationExists is returned when a live pending
	// verification already holds the email.
	ErrPendingVerificationExists = errors.New("pending verification already exists")

	// ErrPendingVerificationNotFound is returned when no live pending
	// verification matches the token hash.
	ErrPendingVerificationNotFound = errors.New("pending verification was not found")

	// ErrSessionNotFound is returned when no unexpired session matches the
	// token hash.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrAccessCodeAlreadyExists is returned when creating a code that is
	// already in the ledger.
	ErrAccessCodeAlreadyExists = errors.New("access code already exists")

	// ErrAccessCodeNotFound is returned when a code is absent from the ledger.
	ErrAccessCodeNotFound = errors.New("access code was not found")

	// ErrAccessCodeNotRedeemable is returned when the conditional increment
	// matched no row: the code is unknown, inactive, used up or expired.
	ErrAccessCodeNotRedeemable = errors.New("access code is not redeemable")

	// ErrPasswordResetNotFound is returned when no usable reset request
	// matches.
	ErrPasswordResetNotFound = errors.New("password reset was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
