// Package repo provides postgres access for the dashboard queries
package repo

import (
	"context"

	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/platform/store"
	"jobmarket/internal/services/api/jobs/domain"
)

// Repo is the minimal persistence surface for the dashboard
type Repo interface {
	TopSkills(ctx context.Context, roleFamily, mode string, limit int) ([]domain.SkillRow, error)
	RecentJobs(ctx context.Context, roleFamily, mode string, limit int) ([]domain.RecentJob, error)
	RolesSummary(ctx context.Context) ([]domain.RoleSummaryRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) TopSkills(ctx context.Context, roleFamily, mode string, limit int) ([]domain.SkillRow, error) {
	const sql = `
select f.skill, count(*) as job_count
from job_skill_facts f
join job_dim d using (job_id)
where ($1 = '' or d.role_family = $1)
and ($2 = '' or $2 = 'all' or d.is_remote = ($2 = 'remote'))
group by f.skill
order by job_count desc, f.skill asc
limit $3
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (domain.SkillRow, error) {
		var s domain.SkillRow
		err := row.Scan(&s.Skill, &s.JobCount)
		return s, err
	}, sql, roleFamily, mode, limit)
	if err != nil {
		return nil, perr.FromDB(err, "top skills")
	}
	return out, nil
}

func (r *queries) RecentJobs(ctx context.Context, roleFamily, mode string, limit int) ([]domain.RecentJob, error) {
	const sql = `
select d.job_id, d.title, d.company_name, d.role_family, d.location,
       d.is_remote, d.posted_at, d.job_posting_url
from job_dim d
where ($1 = '' or d.role_family = $1)
and ($2 = '' or $2 = 'all' or d.is_remote = ($2 = 'remote'))
and d.posted_at is not null
order by d.posted_at desc
limit $3
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (domain.RecentJob, error) {
		var j domain.RecentJob
		err := row.Scan(
			&j.JobID, &j.Title, &j.CompanyName, &j.RoleFamily, &j.Location,
			&j.IsRemote, &j.PostedAt, &j.JobPostingURL,
		)
		return j, err
	}, sql, roleFamily, mode, limit)
	if err != nil {
		return nil, perr.FromDB(err, "recent jobs")
	}
	return out, nil
}

func (r *queries) RolesSummary(ctx context.Context) ([]domain.RoleSummaryRow, error) {
	const sql = `
select role_family, count(*) as job_count,
       avg(case when is_remote then 1.0 else 0.0 end) as remote_share
from job_dim
group by role_family
order by job_count desc, role_family asc
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (domain.RoleSummaryRow, error) {
		var s domain.RoleSummaryRow
		err := row.Scan(&s.RoleFamily, &s.JobCount, &s.RemoteShare)
		return s, err
	}, sql)
	if err != nil {
		return nil, perr.FromDB(err, "roles summary")
	}
	return out, nil
}
