// Package repo provides the ingest repository implementation
package repo

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
)

//go:embed schema.sql
var schemaSQL string

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the ingest repository
type Storage interface {
	EnsureSchema(ctx context.Context) error
	Truncate(ctx context.Context, table string) error
	InsertBatch(ctx context.Context, table string, cols []string, rows [][]any) (int64, error)
}

// EnsureSchema creates raw and derived tables when absent
func (s *pg) EnsureSchema(ctx context.Context) error {
	for _, stmt := range splitStatements(schemaSQL) {
		if _, err := s.q.Exec(ctx, stmt); err != nil {
			return perr.FromDB(err, "ensure schema")
		}
	}
	return nil
}

// Truncate empties a raw table before reload
func (s *pg) Truncate(ctx context.Context, table string) error {
	if _, err := s.q.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
		return perr.FromDB(err, "truncate "+table)
	}
	return nil
}

// insertChunk caps rows per multi-row INSERT so we stay far below the
// wire limit on bind parameters
const insertChunk = 500

// InsertBatch appends rows with multi-row inserts and returns rows written
func (s *pg) InsertBatch(ctx context.Context, table string, cols []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var written int64
	for start := 0; start < len(rows); start += insertChunk {
		end := start + insertChunk
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES ")

		args := make([]any, 0, len(chunk)*len(cols))
		for i, row := range chunk {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('(')
			for j := range cols {
				if j > 0 {
					sb.WriteByte(',')
				}
				fmt.Fprintf(&sb, "$%d", len(args)+1)
				args = append(args, row[j])
			}
			sb.WriteByte(')')
		}

		tag, err := s.q.Exec(ctx, sb.String(), args...)
		if err != nil {
			return written, perr.FromDB(err, "insert into "+table)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}

// splitStatements breaks the embedded DDL on semicolons; the schema file
// holds no string literals containing semicolons
func splitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
