package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock wrapped", err: fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("duplicate")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))

	assert.True(t, c.IsUniqueViolation(unique))
	assert.False(t, c.IsUniqueViolation(fk))
	assert.False(t, c.IsUniqueViolation(busy))
}
