package main

import (
	"context"
	"flag"

	"jobmarket/internal/modkit"
	"jobmarket/internal/platform/config"
	"jobmarket/internal/platform/logger"
	"jobmarket/internal/platform/store"

	ingestmod "jobmarket/internal/services/ingest/module"
)

func main() {
	config.LoadDotEnv()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	dataDir := flag.String("data-dir", "", "directory holding the raw csv drop (overrides INGEST_DATA_DIR)")
	flag.Parse()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "jobmarket-ingest",
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

	dir := *dataDir
	if dir == "" {
		dir = ingestmod.FromConfig(root).DataDir
	}

	m := ingestmod.New(deps)
	counts, err := m.Ports().Loader.Run(context.Background(), dir)
	if err != nil {
		l.Fatal().Err(err).Msg("ingest failed")
	}
	for _, c := range counts {
		l.Info().Str("table", c.Table).Int64("rows", c.Rows).Msg("loaded")
	}
}
