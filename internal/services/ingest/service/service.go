// Package service implements the raw CSV loader
package service

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/platform/logger"
	pstrings "jobmarket/internal/platform/strings"
	"jobmarket/internal/services/ingest/domain"
	"jobmarket/internal/services/ingest/repo"
)

// column kinds drive per-cell coercion
type kind uint8

const (
	kindText kind = iota
	kindID        // bigint, parse failures land as NULL
	kindNum       // double precision, parse failures land as NULL
)

type col struct {
	name string
	kind kind
}

// tableCols maps each raw table to its column spec.
// CSV headers are matched case-insensitively; absent columns load as NULL
var tableCols = map[string][]col{
	"job_postings_raw": {
		{"job_id", kindID},
		{"company_id", kindID},
		{"title", kindText},
		{"description", kindText},
		{"skills_desc", kindText},
		{"remote_allowed", kindText},
		{"location", kindText},
		{"listed_time", kindText},
		{"formatted_experience_level", kindText},
		{"formatted_work_type", kindText},
		{"job_posting_url", kindText},
	},
	"job_skills_raw": {
		{"job_id", kindID},
		{"skill_abr", kindText},
	},
	"job_industries_raw": {
		{"job_id", kindID},
		{"industry_id", kindText},
	},
	"benefits_raw": {
		{"job_id", kindID},
		{"inferred", kindText},
		{"type", kindText},
	},
	"companies_raw": {
		{"company_id", kindID},
		{"name", kindText},
		{"company_size", kindText},
	},
	"employee_counts_raw": {
		{"company_id", kindID},
		{"employee_count", kindNum},
		{"follower_count", kindNum},
		{"time_recorded", kindNum},
	},
	"company_industries_raw": {
		{"company_id", kindID},
		{"industry", kindText},
	},
	"company_specialities_raw": {
		{"company_id", kindID},
		{"speciality", kindText},
	},
}

// Service loads the raw CSV drop, replacing table contents
type Service struct {
	runner repokit.TxRunner
	binder repokit.Binder[repo.Storage]
}

// New constructs the ingest service
func New(runner repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{runner: runner, binder: binder}
}

// Run implements domain.LoaderPort.
// Every expected file is checked before any write so a partial drop
// cannot clobber loaded data
func (s *Service) Run(ctx context.Context, dataDir string) ([]domain.TableCount, error) {
	files := domain.Files()

	for _, f := range files {
		p := filepath.Join(dataDir, f.RelPath)
		if _, err := os.Stat(p); err != nil {
			return nil, perr.Preconditionf("missing expected file: %s", p)
		}
	}

	log := logger.Named("ingest")

	if err := s.binder.Bind(s.runner).EnsureSchema(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.TableCount, 0, len(files))
	for _, f := range files {
		p := filepath.Join(dataDir, f.RelPath)
		log.Info().Str("file", p).Str("table", f.Table).Msg("loading raw csv")

		cols, rows, err := readCSV(p, tableCols[f.Table])
		if err != nil {
			return nil, err
		}

		var n int64
		err = repokit.WithTx(ctx, s.runner, func(q repokit.Queryer) error {
			st := s.binder.Bind(q)
			if err := st.Truncate(ctx, f.Table); err != nil {
				return err
			}
			var werr error
			n, werr = st.InsertBatch(ctx, f.Table, cols, rows)
			return werr
		})
		if err != nil {
			return nil, err
		}

		log.Info().Str("table", f.Table).Int64("rows", n).Msg("table loaded")
		out = append(out, domain.TableCount{Table: f.Table, Rows: n})
	}
	return out, nil
}

// readCSV parses the file and shapes records to the table's column spec
func readCSV(path string, spec []col) ([]string, [][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodePrecondition, "open %s", path)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // source files have ragged rows
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, perr.InvalidArgf("%s: cannot read header: %v", path, err)
	}

	// header name -> record index, case-insensitive
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make([]string, len(spec))
	for i, c := range spec {
		cols[i] = c.name
	}

	var rows [][]any
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, perr.InvalidArgf("%s: malformed csv: %v", path, err)
		}
		row := make([]any, len(spec))
		for i, c := range spec {
			j, ok := idx[c.name]
			if !ok || j >= len(rec) {
				row[i] = nil
				continue
			}
			row[i] = coerce(rec[j], c.kind)
		}
		rows = append(rows, row)
	}
	return cols, rows, nil
}

// coerce maps a raw cell to a bind arg according to the column kind
func coerce(raw string, k kind) any {
	switch k {
	case kindID:
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil
		}
		// ids arrive as "12345" or "12345.0" depending on the exporter
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		// ParseFloat accepts "NaN" and "Inf"; those and values outside
		// int64 range have no defined integer conversion, so load NULL
		// the float64 form of MaxInt64 rounds up to 2^63, hence >=
		if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
			return nil
		}
		return int64(f)
	case kindNum:
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	default:
		return pstrings.SQLNull(raw)
	}
}

var _ domain.LoaderPort = (*Service)(nil)
