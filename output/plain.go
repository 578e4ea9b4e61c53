package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Leghis/sorting-visualizer/engine"
)

// FormatNumber renders n with thousands separators (1234567 -> "1,234,567").
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// RenderPlain formats the document for human-readable terminal output.
func RenderPlain(d *Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "sortviz %s (%s)\n", d.Metadata.Command, d.Metadata.Version)
	fmt.Fprintf(&b, "Generated: %s  Duration: %dms\n\n",
		d.Metadata.GeneratedAt.Format("2006-01-02 15:04:05"), d.Metadata.DurationMS)

	if d.Run != nil {
		fmt.Fprintf(&b, "Run: %s on %s elements\n", d.Run.Algorithm, FormatNumber(d.Run.ArraySize))
		fmt.Fprintf(&b, "  Comparisons: %s\n", FormatNumber(int(d.Run.Comparisons)))
		fmt.Fprintf(&b, "  Swaps:       %s\n", FormatNumber(int(d.Run.Swaps)))
		fmt.Fprintf(&b, "  Elapsed:     %dms\n\n", d.Run.ElapsedMS)
	}

	if len(d.Benchmark) > 0 {
		b.WriteString("Benchmark results:\n")
		for _, alg := range sortedAlgorithms(d) {
			res := d.Benchmark[alg]
			fmt.Fprintf(&b, "  %s:\n", alg)
			for i, size := range res.Sizes {
				fmt.Fprintf(&b, "    n=%-7s time=%dms  comparisons=%s  swaps=%s\n",
					FormatNumber(size), res.TimesMS[i],
					FormatNumber(int(res.Comparisons[i])), FormatNumber(int(res.Swaps[i])))
			}
		}
		b.WriteString("\n")
	}

	if len(d.Aggregates) > 0 {
		b.WriteString("History aggregates:\n")
		keys := make([]string, 0, len(d.Aggregates))
		for alg := range d.Aggregates {
			keys = append(keys, string(alg))
		}
		sort.Strings(keys)
		for _, key := range keys {
			agg := d.Aggregates[engine.Algorithm(key)]
			fmt.Fprintf(&b, "  %s: %d runs, mean elapsed %.1fms, mean comparisons %.1f\n",
				key, agg.Runs, agg.MeanElapsedMS, agg.MeanComparisons)
		}
		b.WriteString("\n")
	}

	for _, w := range d.Warnings {
		fmt.Fprintf(&b, "Warning (%s): %s\n", w.Type, w.Message)
	}
	for _, e := range d.Errors {
		fmt.Fprintf(&b, "Error (%s): %s\n", e.Type, e.Message)
	}

	return b.String()
}

// sortedAlgorithms lists the benchmark map keys in the canonical algorithm
// order, so output is stable across runs.
func sortedAlgorithms(d *Document) []engine.Algorithm {
	out := make([]engine.Algorithm, 0, len(d.Benchmark))
	for _, alg := range engine.Algorithms() {
		if _, ok := d.Benchmark[alg]; ok {
			out = append(out, alg)
		}
	}
	// Anything outside the canonical set (shouldn't happen) goes last.
	if len(out) < len(d.Benchmark) {
		var extra []string
		for alg := range d.Benchmark {
			if !engine.Valid(alg) {
				extra = append(extra, string(alg))
			}
		}
		sort.Strings(extra)
		for _, alg := range extra {
			out = append(out, engine.Algorithm(alg))
		}
	}
	return out
}
