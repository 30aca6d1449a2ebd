// Package http provides http transport for the dashboard queries
package http

import (
	stdhttp "net/http"

	"jobmarket/internal/modkit/httpkit"
	"jobmarket/internal/services/api/jobs/domain"
)

// Register mounts the dashboard endpoints on the given router
func Register(r httpkit.Router, q domain.QueryPort) {
	h := &handlers{q: q}

	// skill counts joined dim to facts
	httpkit.GetQuery[domain.SkillsQuery](r, "/skills/top", h.topSkills)

	// newest postings first
	httpkit.GetQuery[domain.RecentQuery](r, "/jobs/recent", h.recentJobs)

	// per family totals with remote share
	httpkit.Get(r, "/roles/summary", h.rolesSummary)
}

type handlers struct{ q domain.QueryPort }

func (h *handlers) topSkills(r *stdhttp.Request, in domain.SkillsQuery) (any, error) {
	return h.q.TopSkills(r.Context(), in)
}

func (h *handlers) recentJobs(r *stdhttp.Request, in domain.RecentQuery) (any, error) {
	return h.q.RecentJobs(r.Context(), in)
}

func (h *handlers) rolesSummary(r *stdhttp.Request) (any, error) {
	return h.q.RolesSummary(r.Context())
}
