package domain

import "context"

// LoaderPort loads the raw CSV drop into the relational store
type LoaderPort interface {
	Run(ctx context.Context, dataDir string) ([]TableCount, error)
}
