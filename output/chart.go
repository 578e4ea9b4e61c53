package output

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Leghis/sorting-visualizer/bench"
	"github.com/Leghis/sorting-visualizer/engine"
)

// PlotBenchmark renders the benchmark matrix as an interactive HTML page
// with one line chart per metric (elapsed time, comparisons, swaps) and
// one series per algorithm. Missing (algorithm, size) pairs simply leave a
// gap in that series.
func PlotBenchmark(results map[engine.Algorithm]*bench.Result, sizes []int, filename string) error {
	if len(results) == 0 {
		return fmt.Errorf("no benchmark results to plot")
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		benchmarkLine("Elapsed Time by Input Size", "ms", sizes, results, timesSeries),
		benchmarkLine("Comparisons by Input Size", "comparisons", sizes, results, comparisonSeries),
		benchmarkLine("Swaps by Input Size", "swaps", sizes, results, swapSeries),
	)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create chart file %s: %w", filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering benchmark charts: %w", err)
	}

	fmt.Printf("Benchmark charts saved to %s\n", filename)
	return nil
}

// seriesFunc extracts one metric's series for a result, aligned to the
// requested sizes; absent pairs yield nil entries (gaps in the line).
type seriesFunc func(res *bench.Result, sizes []int) []opts.LineData

func benchmarkLine(title, yName string, sizes []int, results map[engine.Algorithm]*bench.Result, series seriesFunc) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "sortviz Benchmark",
			Width:     "90vh",
			Height:    "50vh",
			Theme:     types.ThemeVintage,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "8%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "array size",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
		}),
	)

	labels := make([]string, len(sizes))
	for i, s := range sizes {
		labels[i] = fmt.Sprintf("%d", s)
	}
	line.SetXAxis(labels)

	for _, alg := range engine.Algorithms() {
		res, ok := results[alg]
		if !ok {
			continue
		}
		line.AddSeries(string(alg), series(res, sizes),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}

	return line
}

// indexBySize maps a result's parallel slices back onto the requested size
// axis; a size the result is missing maps to -1.
func indexBySize(res *bench.Result, sizes []int) []int {
	idx := make([]int, len(sizes))
	for i := range idx {
		idx[i] = -1
	}
	for pos, size := range res.Sizes {
		for i, want := range sizes {
			if size == want {
				idx[i] = pos
				break
			}
		}
	}
	return idx
}

func timesSeries(res *bench.Result, sizes []int) []opts.LineData {
	data := make([]opts.LineData, len(sizes))
	for i, pos := range indexBySize(res, sizes) {
		if pos < 0 {
			data[i] = opts.LineData{Value: nil}
			continue
		}
		data[i] = opts.LineData{Value: res.TimesMS[pos]}
	}
	return data
}

func comparisonSeries(res *bench.Result, sizes []int) []opts.LineData {
	data := make([]opts.LineData, len(sizes))
	for i, pos := range indexBySize(res, sizes) {
		if pos < 0 {
			data[i] = opts.LineData{Value: nil}
			continue
		}
		data[i] = opts.LineData{Value: res.Comparisons[pos]}
	}
	return data
}

func swapSeries(res *bench.Result, sizes []int) []opts.LineData {
	data := make([]opts.LineData, len(sizes))
	for i, pos := range indexBySize(res, sizes) {
		if pos < 0 {
			data[i] = opts.LineData{Value: nil}
			continue
		}
		data[i] = opts.LineData{Value: res.Swaps[pos]}
	}
	return data
}
