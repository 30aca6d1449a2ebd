package service

import (
	"context"
	"testing"
	"time"

	"jobmarket/internal/core/classify"
	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/services/transform/domain"
	"jobmarket/internal/services/transform/repo"
)

func ptr[T any](v T) *T { return &v }

type fakeStorage struct {
	postings  []domain.RawPosting
	companies []domain.RawCompany
	snaps     []domain.EmployeeSnapshot

	gotDims  []domain.JobDim
	gotFacts []domain.SkillFact
	replaces int
}

func (f *fakeStorage) Postings(context.Context) ([]domain.RawPosting, error) {
	return f.postings, nil
}

func (f *fakeStorage) Companies(context.Context) ([]domain.RawCompany, error) {
	return f.companies, nil
}

func (f *fakeStorage) EmployeeSnapshots(context.Context) ([]domain.EmployeeSnapshot, error) {
	return f.snaps, nil
}

func (f *fakeStorage) ReplaceDerived(_ context.Context, dims []domain.JobDim, facts []domain.SkillFact) (domain.Counts, error) {
	f.replaces++
	f.gotDims = dims
	f.gotFacts = facts
	return domain.Counts{DimRows: int64(len(dims)), FactRows: int64(len(facts))}, nil
}

type fakeRunner struct{ repokit.Queryer }

func (f *fakeRunner) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	return fn(f.Queryer)
}

func newTestService(st *fakeStorage) *Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return New(&fakeRunner{}, binder)
}

func TestRebuild_EnrichesAndClassifies(t *testing.T) {
	st := &fakeStorage{
		postings: []domain.RawPosting{{
			JobID:         ptr(int64(101)),
			CompanyID:     ptr(int64(7)),
			Title:         ptr("Senior Data Engineer"),
			Description:   ptr("Build pipelines with Spark and Airflow on AWS."),
			SkillsDesc:    ptr("Strong SQL required"),
			RemoteAllowed: ptr("1.0"),
			Location:      ptr("Austin, TX"),
			ListedTime:    ptr("1699000000000"),
			WorkType:      ptr("Full-time"),
		}},
		companies: []domain.RawCompany{
			{CompanyID: 7, Name: ptr("Acme"), CompanySize: ptr("3")},
		},
		snaps: []domain.EmployeeSnapshot{
			{CompanyID: ptr(int64(7)), EmployeeCount: ptr(140.0), FollowerCount: ptr(4100.0), TimeRecorded: ptr(1699090000.0)},
		},
	}

	counts, err := newTestService(st).Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if counts.DimRows != 1 {
		t.Fatalf("dim rows = %d, want 1", counts.DimRows)
	}

	d := st.gotDims[0]
	if d.RoleFamily != classify.RoleDataEngineer {
		t.Fatalf("role = %q, want data_engineer", d.RoleFamily)
	}
	if !d.IsRemote {
		t.Fatal("remote_allowed=1.0 should classify remote")
	}
	if d.CompanyName == nil || *d.CompanyName != "Acme" {
		t.Fatalf("company name = %v", d.CompanyName)
	}
	if d.EmployeeCount == nil || *d.EmployeeCount != 140 {
		t.Fatalf("employee count = %v", d.EmployeeCount)
	}
	if d.PostedAt == nil || !d.PostedAt.Equal(time.Unix(1699000000, 0).UTC()) {
		t.Fatalf("posted_at = %v", d.PostedAt)
	}

	want := map[string]bool{"spark": true, "airflow": true, "aws": true, "sql": true}
	for _, f := range st.gotFacts {
		if f.JobID != 101 {
			t.Fatalf("fact job id = %d", f.JobID)
		}
		delete(want, f.Skill)
	}
	if len(want) != 0 {
		t.Fatalf("missing skills: %v", want)
	}
}

func TestRebuild_RemoteFromTextWithoutFlag(t *testing.T) {
	st := &fakeStorage{
		postings: []domain.RawPosting{{
			JobID:       ptr(int64(1)),
			Title:       ptr("Senior Data Engineer"),
			Location:    ptr("Remote - US"),
			Description: ptr("ETL, Airflow, SQL"),
		}},
	}

	if _, err := newTestService(st).Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	d := st.gotDims[0]
	if d.RoleFamily != classify.RoleDataEngineer {
		t.Fatalf("role = %q", d.RoleFamily)
	}
	if !d.IsRemote {
		t.Fatal("location text should imply remote when the flag is absent")
	}
	if d.PostedAt != nil {
		t.Fatalf("posted_at should be absent, got %v", d.PostedAt)
	}

	got := make(map[string]bool)
	for _, f := range st.gotFacts {
		got[f.Skill] = true
	}
	for _, want := range []string{"etl", "airflow", "sql"} {
		if !got[want] {
			t.Fatalf("missing skill %q in %v", want, got)
		}
	}
	if len(got) != 3 {
		t.Fatalf("skills = %v, want exactly etl airflow sql", got)
	}
}

func TestRebuild_DropsPostingsWithoutJobID(t *testing.T) {
	st := &fakeStorage{
		postings: []domain.RawPosting{
			{JobID: nil, Title: ptr("Broken"), Description: ptr("python everywhere")},
			{JobID: ptr(int64(5)), Title: ptr("Analyst")},
		},
	}

	counts, err := newTestService(st).Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if counts.DimRows != 1 || len(st.gotDims) != 1 {
		t.Fatalf("dims = %d, want 1", len(st.gotDims))
	}
	if st.gotDims[0].JobID != 5 {
		t.Fatalf("kept job = %d", st.gotDims[0].JobID)
	}
	if len(st.gotFacts) != 0 {
		t.Fatalf("facts from dropped posting: %v", st.gotFacts)
	}
}

func TestRebuild_DuplicateJobKeepsFirst(t *testing.T) {
	st := &fakeStorage{
		postings: []domain.RawPosting{
			{JobID: ptr(int64(9)), Title: ptr("Data Engineer"), Description: ptr("sql")},
			{JobID: ptr(int64(9)), Title: ptr("Data Engineer"), Description: ptr("sql and python")},
		},
	}

	if _, err := newTestService(st).Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(st.gotDims) != 1 {
		t.Fatalf("dims = %d, want 1", len(st.gotDims))
	}
	for _, f := range st.gotFacts {
		if f.Skill == "python" {
			t.Fatal("facts leaked from the duplicate posting")
		}
	}
}

func TestRebuild_MissingCompanyLeavesPostingIntact(t *testing.T) {
	st := &fakeStorage{
		postings: []domain.RawPosting{
			{JobID: ptr(int64(3)), CompanyID: ptr(int64(999)), Title: ptr("Backend Engineer")},
		},
	}

	if _, err := newTestService(st).Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	d := st.gotDims[0]
	if d.CompanyName != nil || d.EmployeeCount != nil {
		t.Fatalf("expected nil enrichment, got name=%v count=%v", d.CompanyName, d.EmployeeCount)
	}
	if d.RoleFamily != classify.RoleSoftwareEngineer {
		t.Fatalf("role = %q", d.RoleFamily)
	}
}

func TestLatestSnapshots_KeepsNewestPerCompany(t *testing.T) {
	snaps := []domain.EmployeeSnapshot{
		{CompanyID: ptr(int64(1)), EmployeeCount: ptr(10.0), TimeRecorded: ptr(10.0)},
		{CompanyID: ptr(int64(1)), EmployeeCount: ptr(30.0), TimeRecorded: ptr(30.0)},
		{CompanyID: ptr(int64(1)), EmployeeCount: ptr(20.0), TimeRecorded: ptr(20.0)},
		{CompanyID: nil, EmployeeCount: ptr(99.0), TimeRecorded: ptr(99.0)},
		{CompanyID: ptr(int64(2)), EmployeeCount: ptr(5.0), TimeRecorded: nil},
	}

	latest := latestSnapshots(snaps)
	if len(latest) != 2 {
		t.Fatalf("companies = %d, want 2", len(latest))
	}
	if got := *latest[1].EmployeeCount; got != 30 {
		t.Fatalf("company 1 count = %v, want 30", got)
	}
	if got := *latest[2].EmployeeCount; got != 5 {
		t.Fatalf("company 2 count = %v, want 5", got)
	}
}

func TestRebuild_EmptyRawLayerIsClean(t *testing.T) {
	st := &fakeStorage{}
	counts, err := newTestService(st).Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if counts.DimRows != 0 || counts.FactRows != 0 {
		t.Fatalf("counts = %+v, want zeroes", counts)
	}
	if st.replaces != 1 {
		t.Fatal("derived tables should still be swapped on empty input")
	}
}
