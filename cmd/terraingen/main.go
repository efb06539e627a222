// Package main is the entry point for the terraingen CLI.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	tc := cfg.Terrain

	seed := tc.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("generating terrain",
		zap.Int("size_x", tc.SizeX),
		zap.Int("size_z", tc.SizeZ),
		zap.Float64("min_height", tc.MinHeight),
		zap.Float64("max_height", tc.MaxHeight),
		zap.Float64("flatness", tc.Flatness),
		zap.Uint64("seed", seed))

	gen, err := terrain.NewGeneratorWithOptions(tc.SizeX, tc.SizeZ, terrain.Options{Workers: tc.Workers})
	if err != nil {
		return err
	}

	start := time.Now()
	rng := rand.New(rand.NewPCG(seed, seed))
	if err := gen.Generate(rng, tc.MinHeight, tc.MaxHeight, tc.Flatness); err != nil {
		return err
	}
	logger.Info("heightfield ready", zap.Duration("elapsed", time.Since(start)))

	ramp := terrain.ColorRamp{Low: cfg.Colors.Low, High: cfg.Colors.High}
	build := terrain.BuildMesh
	if cfg.Output.Indexed {
		build = terrain.BuildIndexedMesh
	}
	mesh, err := build(gen, ramp)
	if err != nil {
		return err
	}
	logger.Info("mesh built",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32s("bounds_min", mesh.Bounds.Min[:]),
		zap.Float32s("bounds_max", mesh.Bounds.Max[:]))

	if err := writeFile(cfg.Output.MeshPath, func(f *os.File) error {
		return terrain.WriteOBJ(f, mesh)
	}); err != nil {
		return fmt.Errorf("writing mesh: %w", err)
	}
	logger.Info("mesh written", zap.String("path", cfg.Output.MeshPath))

	if cfg.Output.HeightsPath != "" {
		if err := writeFile(cfg.Output.HeightsPath, func(f *os.File) error {
			return terrain.WriteHeightsCSV(f, gen)
		}); err != nil {
			return fmt.Errorf("writing heights: %w", err)
		}
		logger.Info("heights written", zap.String("path", cfg.Output.HeightsPath))
	}

	return nil
}

// writeFile creates path (and its directory) and hands it to write.
func writeFile(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
