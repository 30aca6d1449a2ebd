// Package module wires the transform service
package module

import (
	"jobmarket/internal/modkit"
	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/services/transform/domain"
	"jobmarket/internal/services/transform/repo"
	"jobmarket/internal/services/transform/service"
)

// Ports exposed by the transform module
type Ports struct {
	Rebuilder domain.RebuilderPort
}

// Module implements the transform service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new transform module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{Rebuilder: svc}
	return m
}

// Name identifies the module
func (m *Module) Name() string { return "transform" }

// Ports returns the module's ports
func (m *Module) Ports() Ports { return m.ports }
