// Package domain defines the dashboard query types
package domain

import (
	"context"
	"time"
)

// SkillsQuery filters the skill ranking endpoint
type SkillsQuery struct {
	RoleFamily string `query:"role_family" json:"role_family" validate:"omitempty,oneof=data_engineer data_scientist ml_engineer analytics software_engineer other"`
	Mode       string `query:"mode" json:"mode" validate:"omitempty,oneof=all remote onsite"`
	Limit      int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

// RecentQuery filters the recent postings endpoint
type RecentQuery struct {
	RoleFamily string `query:"role_family" json:"role_family" validate:"omitempty,oneof=data_engineer data_scientist ml_engineer analytics software_engineer other"`
	Mode       string `query:"mode" json:"mode" validate:"omitempty,oneof=all remote onsite"`
	Limit      int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

// SkillRow is one skill ranking entry
type SkillRow struct {
	Skill    string `json:"skill"`
	JobCount int64  `json:"job_count"`
}

// RecentJob is one posting in the recency feed
type RecentJob struct {
	JobID         int64      `json:"job_id"`
	Title         *string    `json:"title"`
	CompanyName   *string    `json:"company_name"`
	RoleFamily    string     `json:"role_family"`
	Location      *string    `json:"location"`
	IsRemote      bool       `json:"is_remote"`
	PostedAt      *time.Time `json:"posted_at"`
	JobPostingURL *string    `json:"job_posting_url"`
}

// RoleSummaryRow aggregates one role family
type RoleSummaryRow struct {
	RoleFamily  string  `json:"role_family"`
	JobCount    int64   `json:"job_count"`
	RemoteShare float64 `json:"remote_share"`
}

// QueryPort is the read surface the dashboard consumes
type QueryPort interface {
	TopSkills(ctx context.Context, q SkillsQuery) ([]SkillRow, error)
	RecentJobs(ctx context.Context, q RecentQuery) ([]RecentJob, error)
	RolesSummary(ctx context.Context) ([]RoleSummaryRow, error)
}
