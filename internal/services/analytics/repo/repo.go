// Package repo provides the analytics repository implementation
package repo

import (
	"context"

	"jobmarket/internal/core/classify"
	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/platform/store"
	"jobmarket/internal/services/analytics/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the analytics repository
type Storage interface {
	TopSkills(ctx context.Context, limit int) ([]domain.SkillCount, error)
	TopSkillsForRole(ctx context.Context, role classify.RoleFamily, limit int) ([]domain.SkillCount, error)
}

func scanSkillCount(r repokit.Row) (domain.SkillCount, error) {
	var sc domain.SkillCount
	err := r.Scan(&sc.Skill, &sc.JobCount)
	return sc, err
}

// TopSkills counts postings per skill across every role family
func (s *pg) TopSkills(ctx context.Context, limit int) ([]domain.SkillCount, error) {
	const q = `
		SELECT skill, COUNT(*) AS job_count
		FROM job_skill_facts
		GROUP BY skill
		ORDER BY job_count DESC, skill ASC
		LIMIT $1
	`
	out, err := store.Many(ctx, s.q, scanSkillCount, q, limit)
	if err != nil {
		return nil, perr.FromDB(err, "top skills")
	}
	return out, nil
}

// TopSkillsForRole counts postings per skill for one role family
func (s *pg) TopSkillsForRole(ctx context.Context, role classify.RoleFamily, limit int) ([]domain.SkillCount, error) {
	const q = `
		SELECT f.skill, COUNT(*) AS job_count
		FROM job_skill_facts f
		JOIN job_dim d USING (job_id)
		WHERE d.role_family = $1
		GROUP BY f.skill
		ORDER BY job_count DESC, f.skill ASC
		LIMIT $2
	`
	out, err := store.Many(ctx, s.q, scanSkillCount, q, string(role), limit)
	if err != nil {
		return nil, perr.FromDB(err, "top skills for "+string(role))
	}
	return out, nil
}
