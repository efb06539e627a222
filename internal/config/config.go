// Package config handles terraingen configuration loading and management.
package config

// Config holds all generation settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Colors  ColorConfig   `yaml:"colors"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds heightfield parameters.
type TerrainConfig struct {
	SizeX     int     `yaml:"size_x"`     // Grid points along X
	SizeZ     int     `yaml:"size_z"`     // Grid points along Z
	MinHeight float64 `yaml:"min_height"` // Rim elevation
	MaxHeight float64 `yaml:"max_height"`
	Flatness  float64 `yaml:"flatness"` // Node spacing of the lowest octave; <= 0 means default
	Seed      uint64  `yaml:"seed"`     // 0 picks a seed from the clock
	Workers   int     `yaml:"workers"`  // Noise sampling goroutines; 0 or 1 is sequential
}

// ColorConfig holds the elevation color ramp, RGB in [0,1].
type ColorConfig struct {
	Low  [3]float32 `yaml:"low"`
	High [3]float32 `yaml:"high"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	MeshPath    string `yaml:"mesh_path"`    // Wavefront OBJ
	HeightsPath string `yaml:"heights_path"` // CSV dump, optional
	Indexed     bool   `yaml:"indexed"`      // Shared vertices instead of a triangle soup
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			SizeX:     128,
			SizeZ:     128,
			MinHeight: -4,
			MaxHeight: 20,
			Flatness:  100,
			Seed:      0,
			Workers:   0,
		},
		Colors: ColorConfig{
			Low:  [3]float32{0.22, 0.45, 0.16},
			High: [3]float32{0.95, 0.95, 0.97},
		},
		Output: OutputConfig{
			MeshPath:    "terrain.obj",
			HeightsPath: "",
			Indexed:     false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
