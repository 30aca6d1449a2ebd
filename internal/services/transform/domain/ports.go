package domain

import "context"

// RebuilderPort rebuilds the derived tables from the raw layer
type RebuilderPort interface {
	Rebuild(ctx context.Context) (Counts, error)
}
