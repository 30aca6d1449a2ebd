package module

import "jobmarket/internal/platform/config"

// Options holds configuration settings for the ingest module
type Options struct {
	DataDir string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	inf := cfg.Prefix("INGEST_")
	return Options{
		DataDir: inf.MayString("DATA_DIR", "data"),
	}
}
