package main

import (
	"context"

	"jobmarket/internal/modkit"
	"jobmarket/internal/platform/config"
	"jobmarket/internal/platform/logger"
	"jobmarket/internal/platform/store"

	transformmod "jobmarket/internal/services/transform/module"
)

func main() {
	config.LoadDotEnv()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "jobmarket-transform",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{Cfg: root, PG: st.PG, Log: *l}

	m := transformmod.New(deps)
	counts, err := m.Ports().Rebuilder.Rebuild(context.Background())
	if err != nil {
		l.Fatal().Err(err).Msg("transform failed")
	}
	l.Info().
		Int64("job_dim", counts.DimRows).
		Int64("job_skill_facts", counts.FactRows).
		Msg("transform complete")
}
