package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Leghis/sorting-visualizer/engine"
)

// Defaults applied when a field is absent from the config file or flags.
const (
	DefaultAlgorithm = "quick"
	DefaultSize      = 40
	DefaultMinValue  = 5
	DefaultMaxValue  = 99
	DefaultSpeed     = 60
)

// DefaultBenchSizes is the benchmark size matrix used when none is given.
var DefaultBenchSizes = []int{100, 250, 500, 1000}

// VisualizeConfig configures one interactive visualization run.
type VisualizeConfig struct {
	Algorithm string `toml:"algorithm"`
	Size      int    `toml:"size"`
	MinValue  int    `toml:"minValue"`
	MaxValue  int    `toml:"maxValue"`
	Speed     int    `toml:"speed"`
	Sound     bool   `toml:"sound"`
	Seed      int64  `toml:"seed"` // 0 = time-based
}

// BenchmarkConfig configures the benchmark matrix.
type BenchmarkConfig struct {
	Sizes      []int    `toml:"sizes"`
	Algorithms []string `toml:"algorithms"`
	Seed       int64    `toml:"seed"` // 0 = time-based
	MinValue   int      `toml:"minValue"`
	MaxValue   int      `toml:"maxValue"`
	PlotPath   string   `toml:"plotPath"`
	CSVPath    string   `toml:"csvPath"`
}

type Config struct {
	Visualize *VisualizeConfig `toml:"visualize"`
	Benchmark *BenchmarkConfig `toml:"benchmark"`
}

// DefaultVisualize returns a VisualizeConfig populated with defaults.
func DefaultVisualize() *VisualizeConfig {
	return &VisualizeConfig{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		MinValue:  DefaultMinValue,
		MaxValue:  DefaultMaxValue,
		Speed:     DefaultSpeed,
	}
}

// DefaultBenchmark returns a BenchmarkConfig populated with defaults.
func DefaultBenchmark() *BenchmarkConfig {
	return &BenchmarkConfig{
		Sizes:      append([]int(nil), DefaultBenchSizes...),
		Algorithms: algorithmNames(),
	}
}

func LoadConfig(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	md, err := toml.Decode(string(configData), &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults(md)
	return &config, nil
}

// applyDefaults fills unset fields so a sparse config file still runs.
// The decode metadata distinguishes an absent value range from an
// explicitly configured zero one.
func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Visualize != nil {
		v := c.Visualize
		if v.Algorithm == "" {
			v.Algorithm = DefaultAlgorithm
		}
		if v.Size == 0 {
			v.Size = DefaultSize
		}
		if !md.IsDefined("visualize", "minValue") && !md.IsDefined("visualize", "maxValue") {
			v.MinValue = DefaultMinValue
			v.MaxValue = DefaultMaxValue
		}
		if v.Speed == 0 {
			v.Speed = DefaultSpeed
		}
	}
	if c.Benchmark != nil {
		b := c.Benchmark
		if len(b.Sizes) == 0 {
			b.Sizes = append([]int(nil), DefaultBenchSizes...)
		}
		if len(b.Algorithms) == 0 {
			b.Algorithms = algorithmNames()
		}
	}
}

// ValidateVisualize checks the visualize section for a run command.
func (c *Config) ValidateVisualize() error {
	if c.Visualize == nil {
		return fmt.Errorf("visualize configuration section missing in config file")
	}
	return c.Visualize.Validate()
}

// Validate checks one visualization configuration.
func (v *VisualizeConfig) Validate() error {
	if !engine.Valid(engine.Algorithm(v.Algorithm)) {
		return fmt.Errorf("unknown algorithm %q (supported: %v)", v.Algorithm, engine.Algorithms())
	}
	if v.Size < 1 {
		return fmt.Errorf("size must be >= 1, got %d", v.Size)
	}
	if v.MinValue > v.MaxValue {
		return fmt.Errorf("minValue %d exceeds maxValue %d", v.MinValue, v.MaxValue)
	}
	if v.Speed < engine.MinSpeed || v.Speed > engine.MaxSpeed {
		return fmt.Errorf("speed must be between %d and %d, got %d", engine.MinSpeed, engine.MaxSpeed, v.Speed)
	}
	return nil
}

// ValidateBenchmark checks the benchmark section for a bench command.
func (c *Config) ValidateBenchmark() error {
	if c.Benchmark == nil {
		return fmt.Errorf("benchmark configuration section missing in config file")
	}
	return c.Benchmark.Validate()
}

// Validate checks one benchmark configuration.
func (b *BenchmarkConfig) Validate() error {
	if len(b.Sizes) == 0 {
		return fmt.Errorf("benchmark sizes must not be empty")
	}
	for _, size := range b.Sizes {
		if size < 1 {
			return fmt.Errorf("benchmark size must be >= 1, got %d", size)
		}
	}
	if len(b.Algorithms) == 0 {
		return fmt.Errorf("benchmark algorithms must not be empty")
	}
	for _, alg := range b.Algorithms {
		if !engine.Valid(engine.Algorithm(alg)) {
			return fmt.Errorf("unknown algorithm %q (supported: %v)", alg, engine.Algorithms())
		}
	}
	if b.MinValue > b.MaxValue {
		return fmt.Errorf("minValue %d exceeds maxValue %d", b.MinValue, b.MaxValue)
	}
	return nil
}

// AlgorithmIDs converts the configured names to engine ids.
func (b *BenchmarkConfig) AlgorithmIDs() []engine.Algorithm {
	out := make([]engine.Algorithm, len(b.Algorithms))
	for i, alg := range b.Algorithms {
		out[i] = engine.Algorithm(alg)
	}
	return out
}

func algorithmNames() []string {
	algs := engine.Algorithms()
	out := make([]string, len(algs))
	for i, alg := range algs {
		out[i] = string(alg)
	}
	return out
}
