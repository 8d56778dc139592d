package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path")
	flagOutput     = flag.String("o", "", "Output place file")
	flagScale      = flag.Float64("scale", 0, "World units per stud")
	flagWorkers    = flag.Int("workers", 0, "Concurrent brick assemblers")
	flagQuiet      = flag.Bool("quiet", false, "Disable console logging")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMetrics    = flag.String("metrics", "", "Write Prometheus metrics to this file")
	flagCompress   = flag.String("compress", "", "Output compression: none, gzip or zstd")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagScale > 0 {
		cfg.Convert.Scale = float32(*flagScale)
	}
	if *flagWorkers > 0 {
		cfg.Convert.Workers = *flagWorkers
	}
	if *flagQuiet {
		cfg.Logging.Quiet = true
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMetrics != "" {
		cfg.Metrics.File = *flagMetrics
	}
	if *flagCompress != "" {
		cfg.Output.Compression = *flagCompress
	}
}
