// Package module wires the dashboard query service into the API
package module

import (
	"jobmarket/internal/modkit"
	"jobmarket/internal/modkit/httpkit"
	"jobmarket/internal/modkit/repokit"
	"jobmarket/internal/services/api/jobs/domain"
	jobshttp "jobmarket/internal/services/api/jobs/http"
	"jobmarket/internal/services/api/jobs/repo"
	"jobmarket/internal/services/api/jobs/service"
)

// Ports exposed by the jobs API module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the jobs API module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the jobs API module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{Query: svc}
	return m
}

// Name identifies the module
func (m *Module) Name() string { return "jobs" }

// Prefix is the route prefix under the API root
func (m *Module) Prefix() string { return "/api/v1" }

// Ports returns the module's ports
func (m *Module) Ports() Ports { return m.ports }

// MountRoutes mounts the dashboard endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), nil, func(sub httpkit.Router) {
		jobshttp.Register(sub, m.ports.Query)
	})
}
