package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Leghis/sorting-visualizer/history"
)

// WriteHistoryCSV writes the history log as a flat table, one row per run,
// in insertion order.
func WriteHistoryCSV(w io.Writer, entries []history.Entry) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "algorithm", "array_size", "comparisons", "swaps", "elapsed_ms", "timestamp"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			string(e.Algorithm),
			strconv.Itoa(e.ArraySize),
			strconv.FormatUint(e.Comparisons, 10),
			strconv.FormatUint(e.Swaps, 10),
			strconv.FormatInt(e.ElapsedMS, 10),
			e.Timestamp.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveHistoryCSV writes the history log to a file.
func SaveHistoryCSV(filename string, entries []history.Entry) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create CSV file %s: %w", filename, err)
	}
	defer f.Close()

	if err := WriteHistoryCSV(f, entries); err != nil {
		return err
	}

	fmt.Printf("History exported to %s\n", filename)
	return nil
}
