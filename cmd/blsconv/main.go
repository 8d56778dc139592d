// blsconv converts Blockland saves (.bls) into Roblox place files (.rbxlx).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/blsconv/internal/config"
	"github.com/Faultbox/blsconv/internal/convert"
	"github.com/Faultbox/blsconv/internal/logger"
	"github.com/Faultbox/blsconv/internal/metrics"
	"github.com/Faultbox/blsconv/internal/rbxlx"
	"github.com/Faultbox/blsconv/pkg/formats"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Logging.Quiet); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Sugar.Debugf("effective config: %+v", *cfg)

	args := config.Args()
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, cfg, args[0]); err != nil {
		fail(args[0], err)
		os.Exit(1)
	}
}

// fail records a failed run in the log and on stderr.
func fail(input string, err error) {
	logger.Error("conversion failed", zap.String("input", input), zap.Error(err))
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `blsconv - Blockland save to Roblox place converter

Usage:
  blsconv [options] <input.bls>

Options:
  -o <file>          Output place file (default result.rbxlx)
  -scale <n>         World units per stud (default 1)
  -workers <n>       Concurrent brick assemblers (default 1)
  -compress <kind>   Output compression: none, gzip or zstd
  -metrics <file>    Write Prometheus metrics to file
  -config <file>     Config file (default ./blsconv.yaml)
  -save-config <f>   Write the effective config to file
  -quiet             Disable console logging
  -debug             Enable debug logging

Examples:
  blsconv house.bls
  blsconv -scale 0.5 -o house.rbxlx house.bls
  blsconv -workers 8 -compress zstd -o city.rbxlx.zst city.bls`)
}

// run converts input according to cfg and writes the place file.
func run(ctx context.Context, cfg *config.Config, input string) (*convert.Result, error) {
	start := time.Now()

	compression, err := rbxlx.ParseCompression(cfg.Output.Compression)
	if err != nil {
		return nil, err
	}

	save, err := formats.OpenBLSFile(input)
	if err != nil {
		return nil, err
	}
	defer save.Close()
	logger.Info("reading save",
		zap.String("file", input),
		zap.Int("declared_bricks", save.LineCount))
	logger.Debug("save description", zap.Strings("lines", save.Description))

	var m *metrics.Metrics
	if cfg.Metrics.File != "" {
		m = metrics.New()
	}

	src := convert.NewBLSSource(save)
	conv := convert.New(src.Palette(), convert.Options{
		Scale:   cfg.Convert.Scale,
		Workers: cfg.Convert.Workers,
		Logger:  logger.Named("convert"),
		Metrics: m,
	})
	res, err := conv.Run(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", input, err)
	}
	converted := time.Now()

	if len(res.Unknown) > 0 {
		logger.Warn("some brick types could not be converted", zap.Int("types", len(res.Unknown)))
		for _, name := range res.Unknown {
			logger.Warn("unknown brick type", zap.String("name", name))
		}
	}

	if err := rbxlx.WriteFile(cfg.Output.Path, res.Nodes, compression); err != nil {
		return nil, err
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.Metrics.File); err != nil {
			return nil, fmt.Errorf("writing metrics: %w", err)
		}
	}

	logger.Info("place written",
		zap.String("file", cfg.Output.Path),
		zap.Int("nodes", len(res.Nodes)),
		zap.Duration("convert", converted.Sub(start)),
		zap.Duration("write", time.Since(converted)),
		zap.Duration("total", time.Since(start)))
	return res, nil
}
