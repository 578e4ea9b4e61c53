package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/Leghis/sorting-visualizer/config"
	"github.com/Leghis/sorting-visualizer/engine"
	"github.com/Leghis/sorting-visualizer/version"
)

// parseDate attempts to parse the build date
func parseDate(d string) time.Time {
	t, err := time.Parse(time.RFC3339, d)
	if err != nil {
		return time.Now()
	}
	return t
}

// Shared flag definitions to eliminate duplication
var (
	// Configuration flags
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to configuration file (mutually exclusive with other flags)",
	}

	// Run-specific flags
	algorithmFlag = &cli.StringFlag{
		Name:  "algorithm",
		Usage: fmt.Sprintf("Sorting algorithm to run (one of %v)", engine.Algorithms()),
		Value: config.DefaultAlgorithm,
	}
	sizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "Number of elements in the generated array",
		Value: config.DefaultSize,
	}
	minFlag = &cli.IntFlag{
		Name:  "min",
		Usage: "Smallest possible generated value",
		Value: config.DefaultMinValue,
	}
	maxFlag = &cli.IntFlag{
		Name:  "max",
		Usage: "Largest possible generated value",
		Value: config.DefaultMaxValue,
	}
	speedFlag = &cli.IntFlag{
		Name:  "speed",
		Usage: fmt.Sprintf("Animation speed, %d (slowest) to %d (fastest)", engine.MinSpeed, engine.MaxSpeed),
		Value: config.DefaultSpeed,
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Random seed for array generation (0 = time-based)",
	}
	soundFlag = &cli.BoolFlag{
		Name:  "sound",
		Usage: "Terminal bell on every swap (TUI mode)",
		Value: false,
	}
	tuiFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Launch TUI (Terminal User Interface) mode",
		Value: false,
	}

	// Bench-specific flags
	sizesFlag = &cli.IntSliceFlag{
		Name:  "sizes",
		Usage: "Benchmark input sizes (multiple can be passed)",
	}
	algorithmsFlag = &cli.StringSliceFlag{
		Name:  "algorithms",
		Usage: "Algorithms to benchmark (default: all)",
	}
	plotPathFlag = &cli.StringFlag{
		Name:  "plotPath",
		Usage: "Path where to save the benchmark chart file (e.g., '/path/to/bench.html'). If not provided, no plot will be generated.",
	}
	csvPathFlag = &cli.StringFlag{
		Name:  "csvPath",
		Usage: "Path where to export the run history as CSV. If not provided, no export happens.",
	}

	// Output flags
	compactFlag = &cli.BoolFlag{
		Name:  "compact",
		Usage: "Output compact JSON (no pretty printing)",
		Value: false,
	}
	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Output plain text format for easy readability",
		Value: false,
	}
)

// Shared validation functions
func validateConfigModeFlags(c *cli.Context, allowedFlags []string) error {
	// Create a map for quick lookup of allowed flags
	allowed := make(map[string]bool)
	for _, flag := range allowedFlags {
		allowed[flag] = true
	}

	// Check all possible flags
	flagsToCheck := []string{
		"algorithm", "size", "min", "max", "speed", "seed", "sound", "tui",
		"sizes", "algorithms", "plotPath", "csvPath", "compact", "plain",
	}

	for _, flag := range flagsToCheck {
		if c.IsSet(flag) && !allowed[flag] {
			return fmt.Errorf("when using --config, only %v flags are allowed", allowedFlags)
		}
	}
	return nil
}

func validatePlotPath(plotPath string) error {
	if plotPath != "" {
		plotDir := filepath.Dir(plotPath)
		if plotDir == "." {
			plotDir, _ = os.Getwd()
		}
		if _, err := os.Stat(plotDir); os.IsNotExist(err) {
			return fmt.Errorf("plot directory does not exist: %s", plotDir)
		}
	}
	return nil
}

// Command handler functions to reduce deep nesting

// handleRunCommand processes the run command with proper separation of concerns
func handleRunCommand(c *cli.Context) error {
	configPath := c.String("config")
	if configPath != "" {
		return handleRunConfigMode(c, configPath)
	}
	return handleRunFlagsMode(c)
}

// handleRunConfigMode handles run command when using config file
func handleRunConfigMode(c *cli.Context, configPath string) error {
	// Validate only allowed flags in config mode
	if err := validateConfigModeFlags(c, []string{"tui", "compact", "plain"}); err != nil {
		return err
	}

	// Load and validate config
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateVisualize(); err != nil {
		return fmt.Errorf("invalid visualize configuration: %w", err)
	}

	return RunFromConfig(cfg, c.Bool("compact"), c.Bool("plain"), c.Bool("tui"))
}

// handleRunFlagsMode handles run command when using CLI flags only
func handleRunFlagsMode(c *cli.Context) error {
	visualize := &config.VisualizeConfig{
		Algorithm: c.String("algorithm"),
		Size:      c.Int("size"),
		MinValue:  c.Int("min"),
		MaxValue:  c.Int("max"),
		Speed:     c.Int("speed"),
		Sound:     c.Bool("sound"),
		Seed:      c.Int64("seed"),
	}

	if err := visualize.Validate(); err != nil {
		return err
	}

	return Run(visualize, c.Bool("compact"), c.Bool("plain"), c.Bool("tui"))
}

// handleBenchCommand processes the bench command with proper separation of concerns
func handleBenchCommand(c *cli.Context) error {
	configPath := c.String("config")
	if configPath != "" {
		return handleBenchConfigMode(c, configPath)
	}
	return handleBenchFlagsMode(c)
}

// handleBenchConfigMode handles bench command when using config file
func handleBenchConfigMode(c *cli.Context, configPath string) error {
	// Validate only allowed flags in config mode
	if err := validateConfigModeFlags(c, []string{"compact", "plain"}); err != nil {
		return err
	}

	// Load and validate config
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateBenchmark(); err != nil {
		return fmt.Errorf("invalid benchmark configuration: %w", err)
	}

	if err := validatePlotPath(cfg.Benchmark.PlotPath); err != nil {
		return err
	}

	return BenchFromConfig(cfg, c.Bool("compact"), c.Bool("plain"))
}

// handleBenchFlagsMode handles bench command when using CLI flags only
func handleBenchFlagsMode(c *cli.Context) error {
	benchmark := config.DefaultBenchmark()
	if c.IsSet("sizes") {
		benchmark.Sizes = c.IntSlice("sizes")
	}
	if c.IsSet("algorithms") {
		benchmark.Algorithms = c.StringSlice("algorithms")
	}
	benchmark.Seed = c.Int64("seed")
	benchmark.PlotPath = c.String("plotPath")
	benchmark.CSVPath = c.String("csvPath")

	if err := benchmark.Validate(); err != nil {
		return err
	}

	if err := validatePlotPath(benchmark.PlotPath); err != nil {
		return err
	}

	return Bench(benchmark, c.Bool("compact"), c.Bool("plain"))
}

var App = &cli.App{
	Name:     "sortviz",
	Usage:    "Visualize and benchmark classic in-memory sorting algorithms",
	Version:  version.Version,
	Compiled: parseDate(version.Date),
	Commands: []*cli.Command{
		{
			Name:  "run",
			Usage: "Sort one generated array, animated in the TUI or silently with a printed report",
			Flags: []cli.Flag{
				// Configuration
				configFlag,
				// Run-specific flags
				algorithmFlag,
				sizeFlag,
				minFlag,
				maxFlag,
				speedFlag,
				seedFlag,
				soundFlag,
				tuiFlag,
				// Output flags
				compactFlag,
				plainFlag,
			},
			Action: handleRunCommand,
		},
		{
			Name:  "bench",
			Usage: "Run all requested algorithms silently across a matrix of input sizes",
			Flags: []cli.Flag{
				// Configuration
				configFlag,
				// Bench-specific flags
				sizesFlag,
				algorithmsFlag,
				seedFlag,
				plotPathFlag,
				csvPathFlag,
				// Output flags
				compactFlag,
				plainFlag,
			},
			Action: handleBenchCommand,
		},
	},
}
