package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "jobmarket/internal/platform/net/http"
	"jobmarket/internal/services/api/jobs/domain"
)

type fakeQuery struct {
	skills    []domain.SkillRow
	jobs      []domain.RecentJob
	summary   []domain.RoleSummaryRow
	gotSkills domain.SkillsQuery
	gotRecent domain.RecentQuery
}

func (f *fakeQuery) TopSkills(_ context.Context, q domain.SkillsQuery) ([]domain.SkillRow, error) {
	f.gotSkills = q
	return f.skills, nil
}

func (f *fakeQuery) RecentJobs(_ context.Context, q domain.RecentQuery) ([]domain.RecentJob, error) {
	f.gotRecent = q
	return f.jobs, nil
}

func (f *fakeQuery) RolesSummary(context.Context) ([]domain.RoleSummaryRow, error) {
	return f.summary, nil
}

func newTestRouter(q domain.QueryPort) http.Handler {
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), q)
	return mux
}

type envelope struct {
	Status string          `json:"status"`
	Code   int             `json:"code,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return rec, env
}

func TestTopSkills_BindsAndFilters(t *testing.T) {
	fq := &fakeQuery{skills: []domain.SkillRow{{Skill: "sql", JobCount: 9}}}
	h := newTestRouter(fq)

	rec, env := doGet(t, h, "/skills/top?role_family=data_engineer&mode=remote&limit=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if fq.gotSkills.RoleFamily != "data_engineer" || fq.gotSkills.Mode != "remote" || fq.gotSkills.Limit != 10 {
		t.Fatalf("bound query = %+v", fq.gotSkills)
	}

	var rows []domain.SkillRow
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(rows) != 1 || rows[0].Skill != "sql" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestTopSkills_RejectsUnknownRoleFamily(t *testing.T) {
	h := newTestRouter(&fakeQuery{})

	rec, env := doGet(t, h, "/skills/top?role_family=wizard")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Code == 0 {
		t.Fatalf("expected an error code in the envelope, got %+v", env)
	}
}

func TestTopSkills_RejectsBadLimit(t *testing.T) {
	h := newTestRouter(&fakeQuery{})

	rec, _ := doGet(t, h, "/skills/top?limit=nope")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRecentJobs_ReturnsFeed(t *testing.T) {
	title := "Data Engineer"
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fq := &fakeQuery{jobs: []domain.RecentJob{{
		JobID: 101, Title: &title, RoleFamily: "data_engineer", IsRemote: true, PostedAt: &at,
	}}}
	h := newTestRouter(fq)

	rec, env := doGet(t, h, "/jobs/recent?mode=remote")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if fq.gotRecent.Mode != "remote" {
		t.Fatalf("bound query = %+v", fq.gotRecent)
	}

	var rows []domain.RecentJob
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(rows) != 1 || rows[0].JobID != 101 || !rows[0].IsRemote {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestRolesSummary(t *testing.T) {
	fq := &fakeQuery{summary: []domain.RoleSummaryRow{
		{RoleFamily: "data_engineer", JobCount: 40, RemoteShare: 0.25},
		{RoleFamily: "other", JobCount: 10, RemoteShare: 0},
	}}
	h := newTestRouter(fq)

	rec, env := doGet(t, h, "/roles/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var rows []domain.RoleSummaryRow
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(rows) != 2 || rows[0].RemoteShare != 0.25 {
		t.Fatalf("rows = %+v", rows)
	}
}
