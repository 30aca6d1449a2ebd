package module

import "jobmarket/internal/platform/config"

// Options holds configuration settings for the analytics module
type Options struct {
	OutDir string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("ANALYTICS_")
	return Options{
		OutDir: af.MayString("OUT_DIR", "outputs"),
	}
}
