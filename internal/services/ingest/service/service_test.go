package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/services/ingest/domain"
	"jobmarket/internal/services/ingest/repo"
)

type recordedBatch struct {
	table string
	cols  []string
	rows  [][]any
}

type fakeStorage struct {
	schemaCalls int
	truncated   []string
	batches     []recordedBatch
}

func (f *fakeStorage) EnsureSchema(context.Context) error { f.schemaCalls++; return nil }

func (f *fakeStorage) Truncate(_ context.Context, table string) error {
	f.truncated = append(f.truncated, table)
	return nil
}

func (f *fakeStorage) InsertBatch(_ context.Context, table string, cols []string, rows [][]any) (int64, error) {
	f.batches = append(f.batches, recordedBatch{table: table, cols: cols, rows: rows})
	return int64(len(rows)), nil
}

type fakeRunner struct{ repokit.Queryer }

func (f *fakeRunner) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	return fn(f.Queryer)
}

func newTestService(st *fakeStorage) *Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return New(&fakeRunner{}, binder)
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// writeAll lays down a minimal but complete drop
func writeAll(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, "job_postings.csv",
		"job_id,company_id,title,description,skills_desc,remote_allowed,location,listed_time,formatted_experience_level,formatted_work_type,job_posting_url\n"+
			"101.0,7,Senior Data Engineer,Build pipelines with Spark,SQL required,1.0,Austin TX,1699000000000,Senior,Full-time,https://example.com/101\n"+
			"oops,7,Broken Row,,,,Remote,,,,\n")
	writeFile(t, dir, "job_details/job_skills.csv", "job_id,skill_abr\n101,ENG\n")
	writeFile(t, dir, "job_details/job_industries.csv", "job_id,industry_id\n101,4\n")
	writeFile(t, dir, "job_details/benefits.csv", "job_id,inferred,type\n101,0,Medical insurance\n")
	writeFile(t, dir, "company_details/companies.csv", "company_id,name,company_size\n7,Acme,3\n")
	writeFile(t, dir, "company_details/employee_counts.csv",
		"company_id,employee_count,follower_count,time_recorded\n7,120,4000,1699000000\n7,140,4100,1699090000\n")
	writeFile(t, dir, "company_details/company_industries.csv", "company_id,industry\n7,Software\n")
	writeFile(t, dir, "company_details/company_specialities.csv", "company_id,speciality\n7,Data\n")
}

func TestRun_MissingFileFailsBeforeAnyWrite(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)
	if err := os.Remove(filepath.Join(dir, "company_details/companies.csv")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	st := &fakeStorage{}
	_, err := newTestService(st).Run(context.Background(), dir)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !perr.IsCode(err, perr.ErrorCodePrecondition) {
		t.Fatalf("expected precondition, got %v", err)
	}
	if st.schemaCalls != 0 || len(st.truncated) != 0 || len(st.batches) != 0 {
		t.Fatalf("storage touched before precondition check: %+v", st)
	}
}

func TestRun_LoadsEveryTableInOrder(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)

	st := &fakeStorage{}
	counts, err := newTestService(st).Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	files := domain.Files()
	if len(counts) != len(files) {
		t.Fatalf("expected %d table counts, got %d", len(files), len(counts))
	}
	if st.schemaCalls != 1 {
		t.Fatalf("expected one schema call, got %d", st.schemaCalls)
	}
	for i, f := range files {
		if counts[i].Table != f.Table {
			t.Fatalf("count %d table = %q, want %q", i, counts[i].Table, f.Table)
		}
		if st.truncated[i] != f.Table {
			t.Fatalf("truncate %d = %q, want %q", i, st.truncated[i], f.Table)
		}
		if st.batches[i].table != f.Table {
			t.Fatalf("batch %d table = %q, want %q", i, st.batches[i].table, f.Table)
		}
	}
	if counts[0].Rows != 2 {
		t.Fatalf("job_postings rows = %d, want 2", counts[0].Rows)
	}
}

func TestRun_CoercesPostingColumns(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)

	st := &fakeStorage{}
	if _, err := newTestService(st).Run(context.Background(), dir); err != nil {
		t.Fatalf("run: %v", err)
	}

	postings := st.batches[0]
	if postings.cols[0] != "job_id" || postings.cols[1] != "company_id" {
		t.Fatalf("unexpected column order: %v", postings.cols)
	}

	good := postings.rows[0]
	if got, ok := good[0].(int64); !ok || got != 101 {
		t.Fatalf("job_id = %v, want int64 101", good[0])
	}
	if got, ok := good[1].(int64); !ok || got != 7 {
		t.Fatalf("company_id = %v, want int64 7", good[1])
	}
	if got, ok := good[2].(string); !ok || got != "Senior Data Engineer" {
		t.Fatalf("title = %v", good[2])
	}

	bad := postings.rows[1]
	if bad[0] != nil {
		t.Fatalf("unparseable job_id should load as nil, got %v", bad[0])
	}
	if bad[3] != nil {
		t.Fatalf("empty description should load as nil, got %v", bad[3])
	}
}

func TestRun_CoercesEmployeeCountNumerics(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)

	st := &fakeStorage{}
	if _, err := newTestService(st).Run(context.Background(), dir); err != nil {
		t.Fatalf("run: %v", err)
	}

	var ec recordedBatch
	for _, b := range st.batches {
		if b.table == "employee_counts_raw" {
			ec = b
		}
	}
	if ec.table == "" {
		t.Fatal("employee_counts_raw never loaded")
	}
	row := ec.rows[0]
	if got, ok := row[1].(float64); !ok || got != 120 {
		t.Fatalf("employee_count = %v, want float64 120", row[1])
	}
	if got, ok := row[3].(float64); !ok || got != 1699000000 {
		t.Fatalf("time_recorded = %v, want float64 1699000000", row[3])
	}
}

func TestRun_MissingHeaderColumnLoadsNull(t *testing.T) {
	dir := t.TempDir()
	writeAll(t, dir)
	// drop the speciality column entirely
	writeFile(t, dir, "company_details/company_specialities.csv", "company_id\n7\n")

	st := &fakeStorage{}
	if _, err := newTestService(st).Run(context.Background(), dir); err != nil {
		t.Fatalf("run: %v", err)
	}

	last := st.batches[len(st.batches)-1]
	if last.table != "company_specialities_raw" {
		t.Fatalf("last table = %q", last.table)
	}
	if last.rows[0][1] != nil {
		t.Fatalf("absent column should load as nil, got %v", last.rows[0][1])
	}
}

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		k    kind
		want any
	}{
		{"id plain", "42", kindID, int64(42)},
		{"id float form", "42.0", kindID, int64(42)},
		{"id garbage", "n/a", kindID, nil},
		{"id blank", "  ", kindID, nil},
		{"id nan", "NaN", kindID, nil},
		{"id inf", "+Inf", kindID, nil},
		{"id beyond int64", "1e30", kindID, nil},
		{"num", "3.5", kindNum, 3.5},
		{"num garbage", "many", kindNum, nil},
		{"num nan", "nan", kindNum, nil},
		{"num inf", "-Inf", kindNum, nil},
		{"text", " hello ", kindText, " hello "},
		{"text blank", "   ", kindText, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coerce(tc.raw, tc.k); got != tc.want {
				t.Fatalf("coerce(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
