package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pgx unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"pgx other constraint", &pgconn.PgError{Code: "23503"}, false},
		{"pq unique violation", &pq.Error{Code: "23505"}, true},
		{"pq other code", &pq.Error{Code: "42P01"}, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped pgx violation", fmt.Errorf("create answer: %w", &pgconn.PgError{Code: "23505"}), true},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"plain error mentioning duplicate", errors.New("duplicate key value"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}
