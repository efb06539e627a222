package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagSeed      = flag.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	flagSizeX     = flag.Int("size-x", 0, "Grid points along X")
	flagSizeZ     = flag.Int("size-z", 0, "Grid points along Z")
	flagMinHeight = flag.Float64("min-height", 0, "Rim elevation")
	flagMaxHeight = flag.Float64("max-height", 0, "Peak elevation")
	flagFlatness  = flag.Float64("flatness", 0, "Lowest octave node spacing")
	flagOut       = flag.String("out", "", "Output OBJ path")
	flagHeights   = flag.String("heights", "", "Output heights CSV path")
	flagIndexed   = flag.Bool("indexed", false, "Write an indexed mesh")
	flagWorkers   = flag.Int("workers", 0, "Noise sampling goroutines")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// visitedFlags returns the names of flags given on the command line.
func visitedFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies CLI flag overrides to the config. set names the flags
// given on the command line, for options where zero is a valid value.
func applyFlags(cfg *Config, set map[string]bool) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagSizeX > 0 {
		cfg.Terrain.SizeX = *flagSizeX
	}
	if *flagSizeZ > 0 {
		cfg.Terrain.SizeZ = *flagSizeZ
	}
	if set["min-height"] {
		cfg.Terrain.MinHeight = *flagMinHeight
	}
	if set["max-height"] {
		cfg.Terrain.MaxHeight = *flagMaxHeight
	}
	if *flagFlatness > 0 {
		cfg.Terrain.Flatness = *flagFlatness
	}
	if *flagOut != "" {
		cfg.Output.MeshPath = *flagOut
	}
	if *flagHeights != "" {
		cfg.Output.HeightsPath = *flagHeights
	}
	if *flagIndexed {
		cfg.Output.Indexed = true
	}
	if *flagWorkers > 0 {
		cfg.Terrain.Workers = *flagWorkers
	}
}
