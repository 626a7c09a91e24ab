package batch

import (
	"encoding/json"
	"os"
)

// Summary totals a batch run for the report header.
type Summary struct {
	Files   int `json:"files"`
	Failed  int `json:"failed"`
	Flipped int `json:"flipped_faces"`
}

// Report is the JSON document written after a batch run.
type Report struct {
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Summarize totals the per-file results.
func Summarize(results []Result) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		if !r.Success {
			s.Failed++
		}
		s.Flipped += r.Flipped
	}
	return s
}

// WriteReport writes the batch report as indented JSON.
func WriteReport(path string, results []Result) error {
	report := Report{
		Summary: Summarize(results),
		Results: results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
