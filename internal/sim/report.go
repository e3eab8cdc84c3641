package sim

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionReport summarises one session of a batch.
type SessionReport struct {
	ID         string         `json:"id"`
	Seed       int64          `json:"seed"`
	Frames     uint64         `json:"frames"`
	Moves      int            `json:"moves"`
	Food       int            `json:"food_eaten"`
	Runs       int            `json:"runs_completed"`
	EndReasons map[string]int `json:"end_reasons"`
	MaxLength  int            `json:"max_length"`
	Final      string         `json:"final_phase"`
	Fault      string         `json:"fault,omitempty"`
}

// Totals aggregates every session of a batch.
type Totals struct {
	Frames  int64 `json:"frames"`
	Moves   int64 `json:"moves"`
	Food    int64 `json:"food_eaten"`
	RunEnds int64 `json:"run_ends"`
	Faults  int64 `json:"faults"`
}

// Report is the result of a batch.
type Report struct {
	Sessions []SessionReport `json:"sessions"`
	Totals   Totals          `json:"totals"`
	Elapsed  time.Duration   `json:"elapsed_ns"`
}

// EndReasons sums the end reasons over all sessions.
func (r Report) EndReasons() map[string]int {
	out := make(map[string]int)
	for _, s := range r.Sessions {
		for reason, n := range s.EndReasons {
			out[reason] += n
		}
	}
	return out
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "marshal report")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.WithMessage(err, "write report")
	}
	return nil
}

// ReadJSON parses a report written by WriteJSON.
func ReadJSON(data []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, errors.WithMessage(err, "unmarshal report")
	}
	return r, nil
}

// WriteText writes a human-readable summary table.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "  %-8s  %-6s  %-7s  %-5s  %-4s  %-7s  %s\n", "Session", "Seed", "Frames", "Runs", "Food", "MaxLen", "Final")
	fmt.Fprintf(&b, "  %-8s  %-6s  %-7s  %-5s  %-4s  %-7s  %s\n", "-------", "----", "------", "----", "----", "------", "-----")
	for _, s := range r.Sessions {
		id := s.ID
		if len(id) > 8 {
			id = id[:8]
		}
		final := s.Final
		if s.Fault != "" {
			final = "FAULT: " + s.Fault
		}
		fmt.Fprintf(&b, "  %-8s  %-6d  %-7d  %-5d  %-4d  %-7d  %s\n", id, s.Seed, s.Frames, s.Runs, s.Food, s.MaxLength, final)
	}

	b.WriteString("\nRun endings:\n")
	reasons := r.EndReasons()
	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		b.WriteString("  none\n")
	}
	for _, name := range names {
		fmt.Fprintf(&b, "  %-15s %d\n", name, reasons[name])
	}

	fmt.Fprintf(&b, "\nTotals: %d frames, %d moves, %d food, %d runs, %d faults in %s\n",
		r.Totals.Frames, r.Totals.Moves, r.Totals.Food, r.Totals.RunEnds, r.Totals.Faults,
		r.Elapsed.Round(time.Millisecond))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WithMessage(err, "write report")
	}
	return nil
}
