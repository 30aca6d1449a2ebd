// Package service rebuilds the derived job tables from the raw layer
package service

import (
	"context"
	"sort"
	"strings"

	"jobmarket/internal/core/classify"
	"jobmarket/internal/core/epoch"
	"jobmarket/internal/core/textnorm"
	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/platform/logger"
	pstrings "jobmarket/internal/platform/strings"
	"jobmarket/internal/services/transform/domain"
	"jobmarket/internal/services/transform/repo"
)

// Service classifies raw postings and replaces the derived tables
type Service struct {
	runner repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	norm   *textnorm.Normalizer
}

// New constructs the transform service
func New(runner repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{runner: runner, binder: binder, norm: textnorm.New()}
}

// Rebuild implements domain.RebuilderPort.
// Reads happen outside the transaction; the delete-and-insert swap of
// both derived tables commits atomically
func (s *Service) Rebuild(ctx context.Context) (domain.Counts, error) {
	log := logger.Named("transform")
	st := s.binder.Bind(s.runner)

	postings, err := st.Postings(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	companies, err := st.Companies(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	snaps, err := st.EmployeeSnapshots(ctx)
	if err != nil {
		return domain.Counts{}, err
	}

	log.Info().
		Int("postings", len(postings)).
		Int("companies", len(companies)).
		Int("snapshots", len(snaps)).
		Msg("raw layer loaded")

	companyByID := make(map[int64]domain.RawCompany, len(companies))
	for _, c := range companies {
		companyByID[c.CompanyID] = c
	}
	latest := latestSnapshots(snaps)

	dims, facts := s.buildDerived(postings, companyByID, latest)

	var counts domain.Counts
	err = repokit.WithTx(ctx, s.runner, func(q repokit.Queryer) error {
		var werr error
		counts, werr = s.binder.Bind(q).ReplaceDerived(ctx, dims, facts)
		return werr
	})
	if err != nil {
		return domain.Counts{}, err
	}

	log.Info().
		Int64("job_dim", counts.DimRows).
		Int64("job_skill_facts", counts.FactRows).
		Msg("derived tables rebuilt")
	return counts, nil
}

// latestSnapshots keeps the newest observation per company.
// Snapshots without a recorded time sort first so dated ones win
func latestSnapshots(snaps []domain.EmployeeSnapshot) map[int64]domain.EmployeeSnapshot {
	sorted := make([]domain.EmployeeSnapshot, len(snaps))
	copy(sorted, snaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ai, bi := deref0(a.CompanyID), deref0(b.CompanyID)
		if ai != bi {
			return ai < bi
		}
		return derefF(a.TimeRecorded) < derefF(b.TimeRecorded)
	})

	out := make(map[int64]domain.EmployeeSnapshot)
	for _, s := range sorted {
		if s.CompanyID == nil {
			continue
		}
		out[*s.CompanyID] = s // later entries overwrite earlier ones
	}
	return out
}

// buildDerived classifies each posting and assembles dim and fact rows.
// Postings without a parseable job id carry no stable key and are dropped
func (s *Service) buildDerived(
	postings []domain.RawPosting,
	companies map[int64]domain.RawCompany,
	latest map[int64]domain.EmployeeSnapshot,
) ([]domain.JobDim, []domain.SkillFact) {
	dims := make([]domain.JobDim, 0, len(postings))
	facts := make([]domain.SkillFact, 0, len(postings))
	seenJob := make(map[int64]struct{}, len(postings))
	seenFact := make(map[domain.SkillFact]struct{})

	for _, p := range postings {
		if p.JobID == nil {
			continue
		}
		jobID := *p.JobID
		if _, dup := seenJob[jobID]; dup {
			continue
		}
		seenJob[jobID] = struct{}{}

		title := pstrings.Deref(p.Title)
		text := s.norm.Normalize(strings.Join([]string{
			title,
			pstrings.Deref(p.SkillsDesc),
			pstrings.Deref(p.Description),
		}, " "))

		d := domain.JobDim{
			JobID:           jobID,
			CompanyID:       p.CompanyID,
			Title:           p.Title,
			RoleFamily:      classify.Role(title),
			WorkType:        p.WorkType,
			Location:        p.Location,
			ExperienceLevel: p.ExperienceLevel,
			JobPostingURL:   p.JobPostingURL,
			IsRemote: classify.Remote(
				title,
				pstrings.Deref(p.Location),
				pstrings.Deref(p.Description),
				pstrings.Deref(p.RemoteAllowed),
			),
		}

		if t, ok := epoch.ToTime(pstrings.Deref(p.ListedTime)); ok {
			d.PostedAt = &t
		}

		if p.CompanyID != nil {
			if c, ok := companies[*p.CompanyID]; ok {
				d.CompanyName = c.Name
				d.CompanySize = c.CompanySize
			}
			if snap, ok := latest[*p.CompanyID]; ok {
				d.EmployeeCount = snap.EmployeeCount
				d.FollowerCount = snap.FollowerCount
			}
		}
		dims = append(dims, d)

		for _, skill := range classify.Skills(text) {
			f := domain.SkillFact{JobID: jobID, Skill: skill}
			if _, dup := seenFact[f]; dup {
				continue
			}
			seenFact[f] = struct{}{}
			facts = append(facts, f)
		}
	}
	return dims, facts
}

func deref0(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefF(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

var _ domain.RebuilderPort = (*Service)(nil)
