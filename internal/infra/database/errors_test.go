package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	undefined := &pgconn.PgError{Code: "42703", Message: `column "event_type" does not exist`}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(undefined))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}
