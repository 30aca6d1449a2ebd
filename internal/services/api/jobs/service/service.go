// Package service implements the dashboard query service
package service

import (
	"context"

	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/services/api/jobs/domain"
	"jobmarket/internal/services/api/jobs/repo"
)

// defaultLimit matches the dashboard's default ranking depth
const defaultLimit = 25

// Service answers the dashboard queries
type Service struct {
	runner repokit.TxRunner
	binder repokit.Binder[repo.Repo]
}

// New constructs the dashboard query service
func New(runner repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Service {
	return &Service{runner: runner, binder: binder}
}

func clampLimit(n int) int {
	if n <= 0 {
		return defaultLimit
	}
	return n
}

// TopSkills implements domain.QueryPort
func (s *Service) TopSkills(ctx context.Context, q domain.SkillsQuery) ([]domain.SkillRow, error) {
	return s.binder.Bind(s.runner).TopSkills(ctx, q.RoleFamily, q.Mode, clampLimit(q.Limit))
}

// RecentJobs implements domain.QueryPort
func (s *Service) RecentJobs(ctx context.Context, q domain.RecentQuery) ([]domain.RecentJob, error) {
	return s.binder.Bind(s.runner).RecentJobs(ctx, q.RoleFamily, q.Mode, clampLimit(q.Limit))
}

// RolesSummary implements domain.QueryPort
func (s *Service) RolesSummary(ctx context.Context) ([]domain.RoleSummaryRow, error) {
	return s.binder.Bind(s.runner).RolesSummary(ctx)
}

var _ domain.QueryPort = (*Service)(nil)
