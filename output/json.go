package output

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Leghis/sorting-visualizer/bench"
	"github.com/Leghis/sorting-visualizer/engine"
	"github.com/Leghis/sorting-visualizer/history"
	"github.com/Leghis/sorting-visualizer/version"
)

// Document is the complete result structure printed by the CLI. Exactly
// one of Run/Benchmark is set depending on the command.
type Document struct {
	Metadata   Metadata                              `json:"metadata"`
	Run        *RunReport                            `json:"run,omitempty"`
	Benchmark  map[engine.Algorithm]*bench.Result    `json:"benchmark,omitempty"`
	History    []history.Entry                       `json:"history,omitempty"`
	Aggregates map[engine.Algorithm]history.Aggregate `json:"aggregates,omitempty"`
	Warnings   []Warning                             `json:"warnings"`
	Errors     []Error                               `json:"errors"`

	// Mutex for thread-safe warning/error appending
	mu sync.Mutex `json:"-"`
}

// Metadata describes the run that produced the document.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Command     string    `json:"command"`
	Version     string    `json:"version"`
	DurationMS  int64     `json:"duration_ms"`
}

// RunReport is the outcome of a single sort run.
type RunReport struct {
	Algorithm   engine.Algorithm `json:"algorithm"`
	ArraySize   int              `json:"array_size"`
	Comparisons uint64           `json:"comparisons"`
	Swaps       uint64           `json:"swaps"`
	ElapsedMS   int64            `json:"elapsed_ms"`
	Sorted      []int            `json:"sorted,omitempty"`
}

// Warning represents a warning message
type Warning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Error represents an error message
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewDocument creates a Document with default metadata for the given
// command.
func NewDocument(command string, startTime time.Time) *Document {
	return &Document{
		Metadata: Metadata{
			GeneratedAt: time.Now().UTC(),
			Command:     command,
			Version:     version.Version,
			DurationMS:  time.Since(startTime).Milliseconds(),
		},
		Warnings: []Warning{},
		Errors:   []Error{},
	}
}

// ToJSON converts the document to pretty-printed JSON
func (d *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ToCompactJSON converts the document to compact JSON
func (d *Document) ToCompactJSON() ([]byte, error) {
	return json.Marshal(d)
}

// AddWarning adds a warning to the document (thread-safe)
func (d *Document) AddWarning(warningType, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Warnings = append(d.Warnings, Warning{Type: warningType, Message: message})
}

// AddError adds an error to the document (thread-safe)
func (d *Document) AddError(errorType, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Errors = append(d.Errors, Error{Type: errorType, Message: message})
}

// UpdateDuration updates the duration in metadata
func (d *Document) UpdateDuration(startTime time.Time) {
	d.Metadata.DurationMS = time.Since(startTime).Milliseconds()
}
