package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg says no"}
}

func TestExtractPgError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("outer: %w", pgErr(pgErrUniqueViolation)), ErrorCodeDB, "insert")
	pe, ok := ExtractPgError(wrapped)
	if !ok || pe.Code != pgErrUniqueViolation {
		t.Fatalf("ExtractPgError failed through wrapping: %v %v", pe, ok)
	}
	if _, ok := ExtractPgError(stderrs.New("not pg")); ok {
		t.Fatalf("non-pg error should not extract")
	}
}

func TestPredicates(t *testing.T) {
	if !IsDuplicateKey(pgErr(pgErrUniqueViolation)) {
		t.Fatalf("IsDuplicateKey")
	}
	if !IsUndefinedTable(pgErr(pgErrUndefinedTable)) {
		t.Fatalf("IsUndefinedTable")
	}
	if IsUndefinedTable(pgErr(pgErrUniqueViolation)) {
		t.Fatalf("IsUndefinedTable false positive")
	}
	if !IsRetryable(pgErr(pgErrDeadlockDetected)) {
		t.Fatalf("deadlock should be retryable")
	}
	if IsRetryable(pgErr(pgErrUniqueViolation)) {
		t.Fatalf("unique violation is not retryable")
	}
}

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{pgErrUniqueViolation, ErrorCodeDuplicateKey},
		{pgErrNotNullViolation, ErrorCodeValidation},
		{pgErrInvalidTextRepresentation, ErrorCodeValidation},
		{pgErrUndefinedTable, ErrorCodePrecondition},
		{"55000", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.code))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v/%v, want %v", c.code, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("plain")); ok {
		t.Fatalf("plain error should report !ok")
	}
}

func TestFromDB(t *testing.T) {
	if FromDB(nil, "x") != nil {
		t.Fatalf("FromDB(nil) should be nil")
	}
	err := FromDB(pgErr(pgErrUndefinedTable), "read raw tables")
	if CodeOf(err) != ErrorCodePrecondition {
		t.Fatalf("FromDB mapping = %v", CodeOf(err))
	}
	if CodeOf(FromDB(stderrs.New("conn reset"), "exec")) != ErrorCodeDB {
		t.Fatalf("foreign db errors should map to ErrorCodeDB")
	}
}
