// Package api provides the HTTP API for the dashboard
package api

import (
	stdhttp "net/http"

	"jobmarket/internal/platform/config"
	perr "jobmarket/internal/platform/errors"
	"jobmarket/internal/platform/logger"
	phttp "jobmarket/internal/platform/net/http"
	"jobmarket/internal/platform/store"

	"jobmarket/internal/core/version"
	"jobmarket/internal/modkit"
	"jobmarket/internal/modkit/httpkit"

	jobsmod "jobmarket/internal/services/api/jobs/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: *opt.Logger,
		PG:  opt.Store.PG,
	}

	r.Use(httpkit.CommonStack()...)

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// readiness backed by a live store ping
	httpkit.Get(r, "/healthz", func(req *stdhttp.Request) (any, error) {
		if err := opt.Store.Guard(req.Context()); err != nil {
			return nil, perr.Preconditionf("store unhealthy: %v", err)
		}
		return map[string]any{"status": "ok", "build": version.Info()}, nil
	})

	jobs := jobsmod.New(deps)
	jobs.MountRoutes(r)
}
