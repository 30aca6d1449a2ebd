// Package module wires the analytics service
package module

import (
	"jobmarket/internal/modkit"
	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/services/analytics/domain"
	"jobmarket/internal/services/analytics/repo"
	"jobmarket/internal/services/analytics/service"
)

// Ports exposed by the analytics module
type Ports struct {
	Exporter domain.ExporterPort
}

// Module implements the analytics service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new analytics module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{Exporter: svc}
	return m
}

// Name identifies the module
func (m *Module) Name() string { return "analytics" }

// Ports returns the module's ports
func (m *Module) Ports() Ports { return m.ports }
