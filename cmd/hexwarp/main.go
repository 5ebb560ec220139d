// SPDX-License-Identifier: MIT

// Command hexwarp builds the lattices described in a YAML config, deforms
// them and writes one PNG per scene.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexwarp/config"
)

const ConfigPath = "hexwarp.yaml"

func main() {
	cfgPath := flag.String("config", ConfigPath, "path to the YAML scene config")
	outDir := flag.String("out", ".", "directory for rendered PNG files")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := run(ctx, *cfgPath, *outDir); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, outDir string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	slog.Info("config loaded", "path", cfgPath, "scenes", len(cfg.Scenes))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	// Each scene owns its lattice, so scenes render in parallel.
	g, gctx := errgroup.WithContext(ctx)
	for _, scene := range cfg.Scenes {
		g.Go(func() error {
			if err := renderScene(gctx, scene, outDir, slog.Default()); err != nil {
				return fmt.Errorf("scene %q: %w", scene.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("done", "scenes", len(cfg.Scenes), "out", outDir)
	return nil
}
