package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lshigami/qa-service/internal/errorz"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, errorz.ErrNotFound},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, errorz.ErrConstraintViolation},
		{"postgres foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "fk_questions_answers"}, errorz.ErrConstraintViolation},
		{"postgres other", &pgconn.PgError{Code: "57014"}, errorz.ErrServer},
		{"unknown", errors.New("connection reset"), errorz.ErrServer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateError("op", tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if translateError("op", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestTranslateErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	if got := translateError("op", cause); !errors.Is(got, cause) {
		t.Fatalf("expected original error in chain, got %v", got)
	}
}
