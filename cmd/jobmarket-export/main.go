package main

import (
	"context"
	"flag"

	"jobmarket/internal/modkit"
	"jobmarket/internal/platform/config"
	"jobmarket/internal/platform/logger"
	"jobmarket/internal/platform/store"

	analyticsmod "jobmarket/internal/services/analytics/module"
)

func main() {
	config.LoadDotEnv()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	outDir := flag.String("out-dir", "", "directory for csv reports (overrides ANALYTICS_OUT_DIR)")
	flag.Parse()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "jobmarket-export",
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

	dir := *outDir
	if dir == "" {
		dir = analyticsmod.FromConfig(root).OutDir
	}

	m := analyticsmod.New(deps)
	exports, err := m.Ports().Exporter.Export(context.Background(), dir)
	if err != nil {
		l.Fatal().Err(err).Msg("export failed")
	}
	for _, e := range exports {
		l.Info().Str("file", e.Path).Int("rows", e.Rows).Msg("report written")
	}
}
