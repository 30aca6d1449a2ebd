// Package service writes the analytics reports
package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"jobmarket/internal/core/classify"
	"jobmarket/internal/modkit/repokit"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/platform/logger"
	"jobmarket/internal/services/analytics/domain"
	"jobmarket/internal/services/analytics/repo"
)

// reportLimit caps every exported ranking
const reportLimit = 25

// Service exports skill rankings as CSV reports
type Service struct {
	runner repokit.TxRunner
	binder repokit.Binder[repo.Storage]
}

// New constructs the analytics service
func New(runner repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{runner: runner, binder: binder}
}

// Export implements domain.ExporterPort.
// Writes top_skills.csv and data_engineer_top_skills.csv under outDir
func (s *Service) Export(ctx context.Context, outDir string) ([]domain.Export, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, perr.Preconditionf("create output dir %s: %v", outDir, err)
	}

	log := logger.Named("analytics")
	st := s.binder.Bind(s.runner)

	overall, err := st.TopSkills(ctx, reportLimit)
	if err != nil {
		return nil, err
	}
	dataEng, err := st.TopSkillsForRole(ctx, classify.RoleDataEngineer, reportLimit)
	if err != nil {
		return nil, err
	}

	reports := []struct {
		name string
		rows []domain.SkillCount
	}{
		{"top_skills.csv", overall},
		{"data_engineer_top_skills.csv", dataEng},
	}

	out := make([]domain.Export, 0, len(reports))
	for _, r := range reports {
		p := filepath.Join(outDir, r.name)
		if err := writeReport(p, r.rows); err != nil {
			return nil, err
		}
		log.Info().Str("file", p).Int("rows", len(r.rows)).Msg("report written")
		out = append(out, domain.Export{Name: r.name, Path: p, Rows: len(r.rows)})
	}
	return out, nil
}

func writeReport(path string, rows []domain.SkillCount) error {
	f, err := os.Create(path)
	if err != nil {
		return perr.Internalf("create %s: %v", path, err)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write([]string{"skill", "job_count"}); err != nil {
		return perr.Internalf("write %s: %v", path, err)
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Skill, strconv.FormatInt(r.JobCount, 10)}); err != nil {
			return perr.Internalf("write %s: %v", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return perr.Internalf("flush %s: %v", path, err)
	}
	return f.Close()
}

var _ domain.ExporterPort = (*Service)(nil)
