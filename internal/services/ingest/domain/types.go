// Package domain defines the types and interfaces for the ingest service
package domain

// RawFile pairs a destination table with its expected path under the data dir
type RawFile struct {
	Table   string
	RelPath string
}

// Files lists every expected raw CSV in load order
func Files() []RawFile {
	return []RawFile{
		{"job_postings_raw", "job_postings.csv"},
		{"job_skills_raw", "job_details/job_skills.csv"},
		{"job_industries_raw", "job_details/job_industries.csv"},
		{"benefits_raw", "job_details/benefits.csv"},
		{"companies_raw", "company_details/companies.csv"},
		{"employee_counts_raw", "company_details/employee_counts.csv"},
		{"company_industries_raw", "company_details/company_industries.csv"},
		{"company_specialities_raw", "company_details/company_specialities.csv"},
	}
}

// TableCount reports rows loaded into a table
type TableCount struct {
	Table string
	Rows  int64
}
