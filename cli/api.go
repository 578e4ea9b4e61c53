package cli

import (
	"fmt"
	"time"

	"github.com/Leghis/sorting-visualizer/bench"
	"github.com/Leghis/sorting-visualizer/config"
	"github.com/Leghis/sorting-visualizer/engine"
	"github.com/Leghis/sorting-visualizer/history"
	"github.com/Leghis/sorting-visualizer/output"
	"github.com/Leghis/sorting-visualizer/tui"
)

// ============================================================================
// CONFIGURATION STRUCTS
// ============================================================================

// OutputConfig contains output formatting options
type OutputConfig struct {
	Compact bool
	Plain   bool
	TUI     bool
}

// recorder is the process-wide history log. It lives for the lifetime of
// the process only; persistence across restarts is out of scope.
var recorder = history.NewRecorder()

// ============================================================================
// MAIN ENTRY POINTS - These are the only functions that should be called externally
// ============================================================================

// Run is the unified run entry point - handles TUI and silent report modes
func Run(visualize *config.VisualizeConfig, compact, plain, tuiMode bool) error {
	outputConfig := OutputConfig{
		Compact: compact,
		Plain:   plain,
		TUI:     tuiMode,
	}
	return executeRun(visualize, outputConfig)
}

// RunFromConfig runs the run command from a config file
func RunFromConfig(cfg *config.Config, compact, plain, tuiMode bool) error {
	outputConfig := OutputConfig{
		Compact: compact,
		Plain:   plain,
		TUI:     tuiMode,
	}
	return executeRun(cfg.Visualize, outputConfig)
}

// Bench runs the benchmark matrix
func Bench(benchmark *config.BenchmarkConfig, compact, plain bool) error {
	outputConfig := OutputConfig{
		Compact: compact,
		Plain:   plain,
	}
	return executeBench(benchmark, outputConfig)
}

// BenchFromConfig runs the benchmark matrix from a config file
func BenchFromConfig(cfg *config.Config, compact, plain bool) error {
	outputConfig := OutputConfig{
		Compact: compact,
		Plain:   plain,
	}
	return executeBench(cfg.Benchmark, outputConfig)
}

// ============================================================================
// CORE EXECUTION LOGIC - Single unified execution path
// ============================================================================

// executeRun handles the run command - flags or config file, doesn't matter
func executeRun(visualize *config.VisualizeConfig, outputConfig OutputConfig) error {
	// Route to TUI if requested
	if outputConfig.TUI {
		return executeTUI(visualize)
	}

	startTime := time.Now()
	doc := output.NewDocument("run", startTime)

	var values []int
	var err error
	if visualize.Seed != 0 {
		values, err = engine.GenerateSeeded(visualize.Size, visualize.MinValue, visualize.MaxValue, visualize.Seed)
	} else {
		values, err = engine.Generate(visualize.Size, visualize.MinValue, visualize.MaxValue)
	}
	if err != nil {
		return err
	}

	alg := engine.Algorithm(visualize.Algorithm)
	sorted, stats, err := engine.RunSilent(alg, values)
	if err != nil {
		return err
	}

	recorder.Record(alg, len(values), stats)

	doc.Run = &output.RunReport{
		Algorithm:   alg,
		ArraySize:   len(values),
		Comparisons: stats.Comparisons,
		Swaps:       stats.Swaps,
		ElapsedMS:   stats.ElapsedMS,
		Sorted:      sorted,
	}
	doc.History = recorder.Entries()
	doc.Aggregates = recorder.Aggregates()
	doc.UpdateDuration(startTime)

	return outputResult(doc, outputConfig)
}

// executeTUI runs TUI mode
func executeTUI(visualize *config.VisualizeConfig) error {
	app := tui.NewApp(visualize, recorder)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// executeBench handles the bench command - flags or config file, doesn't matter
func executeBench(benchmark *config.BenchmarkConfig, outputConfig OutputConfig) error {
	startTime := time.Now()
	doc := output.NewDocument("bench", startTime)

	matrix := bench.Matrix{
		Sizes:      benchmark.Sizes,
		Algorithms: benchmark.AlgorithmIDs(),
		Seed:       benchmark.Seed,
		MinValue:   benchmark.MinValue,
		MaxValue:   benchmark.MaxValue,
		Progress:   true,
	}

	results, err := bench.Run(matrix)
	if err != nil {
		return err
	}

	recordBenchResults(doc, benchmark.Sizes, results)

	doc.Benchmark = results
	doc.Aggregates = recorder.Aggregates()
	doc.UpdateDuration(startTime)

	// Generate chart if plotPath is provided
	if benchmark.PlotPath != "" {
		plotStart := time.Now()
		if err := output.PlotBenchmark(results, benchmark.Sizes, benchmark.PlotPath); err != nil {
			doc.AddError("plot", err.Error())
		} else {
			doc.AddWarning("info", fmt.Sprintf("Benchmark charts generated in %v at %s", time.Since(plotStart), benchmark.PlotPath))
		}
	}

	// Export history if csvPath is provided
	if benchmark.CSVPath != "" {
		if err := output.SaveHistoryCSV(benchmark.CSVPath, recorder.Entries()); err != nil {
			doc.AddError("csv", err.Error())
		}
	}

	return outputResult(doc, outputConfig)
}

// recordBenchResults appends every completed pair to the history log and
// flags algorithms that produced fewer slots than requested.
func recordBenchResults(doc *output.Document, requested []int, results map[engine.Algorithm]*bench.Result) {
	for alg, res := range results {
		for i := range res.Sizes {
			recorder.Record(alg, res.Sizes[i], engine.Stats{
				Comparisons: res.Comparisons[i],
				Swaps:       res.Swaps[i],
				ElapsedMS:   res.TimesMS[i],
			})
		}
		if len(res.Sizes) < len(requested) {
			doc.AddWarning("missing_data",
				fmt.Sprintf("%s completed %d of %d sizes", alg, len(res.Sizes), len(requested)))
		}
	}
}

// outputResult prints the document in the requested format.
func outputResult(doc *output.Document, outputConfig OutputConfig) error {
	if outputConfig.Plain {
		fmt.Print(output.RenderPlain(doc))
		return nil
	}

	var data []byte
	var err error
	if outputConfig.Compact {
		data, err = doc.ToCompactJSON()
	} else {
		data, err = doc.ToJSON()
	}
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
