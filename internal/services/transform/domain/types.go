// Package domain defines transform types and ports
package domain

import (
	"time"

	"jobmarket/internal/core/classify"
)

// RawPosting is a job_postings_raw row as read for transformation
type RawPosting struct {
	JobID           *int64
	CompanyID       *int64
	Title           *string
	Description     *string
	SkillsDesc      *string
	RemoteAllowed   *string
	Location        *string
	ListedTime      *string
	ExperienceLevel *string
	WorkType        *string
	JobPostingURL   *string
}

// RawCompany is a companies_raw row keyed by company id
type RawCompany struct {
	CompanyID   int64
	Name        *string
	CompanySize *string
}

// EmployeeSnapshot is one employee_counts_raw observation for a company
type EmployeeSnapshot struct {
	CompanyID     *int64
	EmployeeCount *float64
	FollowerCount *float64
	TimeRecorded  *float64
}

// JobDim is one enriched, classified job posting
type JobDim struct {
	JobID           int64
	CompanyID       *int64
	CompanyName     *string
	CompanySize     *string
	EmployeeCount   *float64
	FollowerCount   *float64
	Title           *string
	RoleFamily      classify.RoleFamily
	WorkType        *string
	Location        *string
	IsRemote        bool
	ExperienceLevel *string
	PostedAt        *time.Time
	JobPostingURL   *string
}

// SkillFact is one (job, skill) mention
type SkillFact struct {
	JobID int64
	Skill string
}

// Counts reports what a rebuild wrote
type Counts struct {
	DimRows  int64
	FactRows int64
}
