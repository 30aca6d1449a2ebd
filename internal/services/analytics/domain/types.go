// Package domain defines analytics types and ports
package domain

import "context"

// SkillCount is one aggregated skill row
type SkillCount struct {
	Skill    string
	JobCount int64
}

// Export names one written report file
type Export struct {
	Name string
	Path string
	Rows int
}

// ExporterPort writes the analytics reports to disk
type ExporterPort interface {
	Export(ctx context.Context, outDir string) ([]Export, error)
}
