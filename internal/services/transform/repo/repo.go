// Package repo provides the transform repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/platform/store"
	"jobmarket/internal/services/transform/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the transform repository
type Storage interface {
	Postings(ctx context.Context) ([]domain.RawPosting, error)
	Companies(ctx context.Context) ([]domain.RawCompany, error)
	EmployeeSnapshots(ctx context.Context) ([]domain.EmployeeSnapshot, error)
	ReplaceDerived(ctx context.Context, dims []domain.JobDim, facts []domain.SkillFact) (domain.Counts, error)
}

// Postings reads the raw postings table in full
func (s *pg) Postings(ctx context.Context) ([]domain.RawPosting, error) {
	const q = `
		SELECT job_id, company_id, title, description, skills_desc,
		       remote_allowed, location, listed_time,
		       formatted_experience_level, formatted_work_type, job_posting_url
		FROM job_postings_raw
	`
	out, err := store.Many(ctx, s.q, func(r repokit.Row) (domain.RawPosting, error) {
		var p domain.RawPosting
		err := r.Scan(
			&p.JobID, &p.CompanyID, &p.Title, &p.Description, &p.SkillsDesc,
			&p.RemoteAllowed, &p.Location, &p.ListedTime,
			&p.ExperienceLevel, &p.WorkType, &p.JobPostingURL,
		)
		return p, err
	}, q)
	if err != nil {
		return nil, perr.FromDB(err, "read job_postings_raw")
	}
	return out, nil
}

// Companies reads the raw companies table, skipping rows without an id
func (s *pg) Companies(ctx context.Context) ([]domain.RawCompany, error) {
	const q = `
		SELECT company_id, name, company_size
		FROM companies_raw
		WHERE company_id IS NOT NULL
	`
	out, err := store.Many(ctx, s.q, func(r repokit.Row) (domain.RawCompany, error) {
		var c domain.RawCompany
		err := r.Scan(&c.CompanyID, &c.Name, &c.CompanySize)
		return c, err
	}, q)
	if err != nil {
		return nil, perr.FromDB(err, "read companies_raw")
	}
	return out, nil
}

// EmployeeSnapshots reads all employee count observations
func (s *pg) EmployeeSnapshots(ctx context.Context) ([]domain.EmployeeSnapshot, error) {
	const q = `
		SELECT company_id, employee_count, follower_count, time_recorded
		FROM employee_counts_raw
	`
	out, err := store.Many(ctx, s.q, func(r repokit.Row) (domain.EmployeeSnapshot, error) {
		var e domain.EmployeeSnapshot
		err := r.Scan(&e.CompanyID, &e.EmployeeCount, &e.FollowerCount, &e.TimeRecorded)
		return e, err
	}, q)
	if err != nil {
		return nil, perr.FromDB(err, "read employee_counts_raw")
	}
	return out, nil
}

// chunk sizes keep bind parameter counts per statement comfortably low
const (
	dimChunk  = 200
	factChunk = 1000
)

// ReplaceDerived swaps the derived tables for the supplied content.
// Callers run it inside a transaction so readers never see a partial state
func (s *pg) ReplaceDerived(ctx context.Context, dims []domain.JobDim, facts []domain.SkillFact) (domain.Counts, error) {
	var counts domain.Counts

	if _, err := s.q.Exec(ctx, "DELETE FROM job_skill_facts"); err != nil {
		return counts, perr.FromDB(err, "clear job_skill_facts")
	}
	if _, err := s.q.Exec(ctx, "DELETE FROM job_dim"); err != nil {
		return counts, perr.FromDB(err, "clear job_dim")
	}

	for start := 0; start < len(dims); start += dimChunk {
		end := min(start+dimChunk, len(dims))
		n, err := s.insertDims(ctx, dims[start:end])
		if err != nil {
			return counts, err
		}
		counts.DimRows += n
	}
	for start := 0; start < len(facts); start += factChunk {
		end := min(start+factChunk, len(facts))
		n, err := s.insertFacts(ctx, facts[start:end])
		if err != nil {
			return counts, err
		}
		counts.FactRows += n
	}
	return counts, nil
}

func (s *pg) insertDims(ctx context.Context, dims []domain.JobDim) (int64, error) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO job_dim (
		job_id, company_id, company_name, company_size,
		employee_count, follower_count, title, role_family,
		work_type, location, is_remote, experience_level,
		posted_at, job_posting_url
	) VALUES `)

	args := make([]any, 0, len(dims)*14)
	for i, d := range dims {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		for j := range 14 {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "$%d", len(args)+j+1)
		}
		sb.WriteByte(')')
		args = append(args,
			d.JobID, d.CompanyID, d.CompanyName, d.CompanySize,
			d.EmployeeCount, d.FollowerCount, d.Title, string(d.RoleFamily),
			d.WorkType, d.Location, d.IsRemote, d.ExperienceLevel,
			d.PostedAt, d.JobPostingURL,
		)
	}

	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, perr.FromDB(err, "insert job_dim")
	}
	return tag.RowsAffected(), nil
}

func (s *pg) insertFacts(ctx context.Context, facts []domain.SkillFact) (int64, error) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO job_skill_facts (job_id, skill) VALUES ")

	args := make([]any, 0, len(facts)*2)
	for i, f := range facts {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "($%d,$%d)", len(args)+1, len(args)+2)
		args = append(args, f.JobID, f.Skill)
	}

	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, perr.FromDB(err, "insert job_skill_facts")
	}
	return tag.RowsAffected(), nil
}
