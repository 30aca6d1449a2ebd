// Package module wires the ingest service
package module

import (
	"jobmarket/internal/modkit"
	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/services/ingest/domain"
	"jobmarket/internal/services/ingest/repo"
	"jobmarket/internal/services/ingest/service"
)

// Ports exposed by the ingest module
type Ports struct {
	Loader domain.LoaderPort
}

// Module implements the ingest service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new ingest module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{Loader: svc}
	return m
}

// Name identifies the module
func (m *Module) Name() string { return "ingest" }

// Ports returns the module's ports
func (m *Module) Ports() Ports { return m.ports }
