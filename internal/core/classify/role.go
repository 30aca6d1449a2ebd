// Package classify holds the pure text classifiers used by the transform stage:
// role family bucketing, remote inference, and skill extraction.
// All classifiers are total functions over already-normalized or raw text
package classify

import "strings"

// RoleFamily is a coarse bucket for a posting title
type RoleFamily string

// Role family buckets, first matching rule wins
const (
	RoleDataEngineer     RoleFamily = "data_engineer"
	RoleDataScientist    RoleFamily = "data_scientist"
	RoleMLEngineer       RoleFamily = "ml_engineer"
	RoleAnalytics        RoleFamily = "analytics"
	RoleSoftwareEngineer RoleFamily = "software_engineer"
	RoleOther            RoleFamily = "other"
)

// RoleFamilies lists every bucket Role can return, in rule order
func RoleFamilies() []RoleFamily {
	return []RoleFamily{
		RoleDataEngineer,
		RoleDataScientist,
		RoleMLEngineer,
		RoleAnalytics,
		RoleSoftwareEngineer,
		RoleOther,
	}
}

// Role buckets a posting title into a role family.
// Ordered substring rules over the lowercased title, first match wins
func Role(title string) RoleFamily {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "data engineer"),
		strings.Contains(t, "etl"),
		strings.Contains(t, "data platform"):
		return RoleDataEngineer
	case strings.Contains(t, "data scientist"),
		strings.Contains(t, "applied scientist"):
		return RoleDataScientist
	case strings.Contains(t, "machine learning") && strings.Contains(t, "engineer"):
		return RoleMLEngineer
	case strings.Contains(t, "analytics"),
		strings.Contains(t, "business intelligence"):
		return RoleAnalytics
	case strings.Contains(t, "software engineer"),
		strings.Contains(t, "backend"),
		strings.Contains(t, "full stack"):
		return RoleSoftwareEngineer
	default:
		return RoleOther
	}
}
