// Collects per-day results into the printed answer sheet and the optional JSON results file.

package puzzle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Report aggregates the results of one run for final output.
type Report struct {
	RunID   string
	Started time.Time
	Results []Result
}

// NewReport creates a Report with a fresh run id.
func NewReport(started time.Time, results []Result) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Started: started,
		Results: results,
	}
}

// Failed returns the number of days that ended with an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Print writes the answer sheet, one line per day:
//
//	Day 04: 4512, 1924 (312µs)
//
// Elapsed time is only shown when timings is true.
func (r *Report) Print(w io.Writer, timings bool) {
	_, _ = fmt.Fprintln(w, "Advent of Code 2021")
	_, _ = fmt.Fprintln(w)
	for _, res := range r.Results {
		if res.Err != nil {
			_, _ = fmt.Fprintf(w, "Day %02d: error: %v\n", res.Day, res.Err)
			continue
		}
		if timings {
			_, _ = fmt.Fprintf(w, "Day %02d: %s (%v)\n", res.Day, res.Answers, res.Elapsed.Round(time.Microsecond))
			continue
		}
		_, _ = fmt.Fprintf(w, "Day %02d: %s\n", res.Day, res.Answers)
	}
}

type resultsFile struct {
	RunID     string      `json:"run_id"`
	StartedAt time.Time   `json:"started_at"`
	Days      []dayResult `json:"days"`
}

type dayResult struct {
	Day       int     `json:"day"`
	Title     string  `json:"title"`
	Answers   []int64 `json:"answers,omitempty"`
	ElapsedUs int64   `json:"elapsed_us"`
	Error     string  `json:"error,omitempty"`
}

// SaveResults writes the report as indented JSON to path.
func (r *Report) SaveResults(path string) error {
	out := resultsFile{
		RunID:     r.RunID,
		StartedAt: r.Started.UTC(),
		Days:      make([]dayResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		d := dayResult{
			Day:       res.Day,
			Title:     res.Title,
			Answers:   res.Answers,
			ElapsedUs: res.Elapsed.Microseconds(),
		}
		if res.Err != nil {
			d.Error = res.Err.Error()
		}
		out.Days = append(out.Days, d)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}
