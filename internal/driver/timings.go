package driver

import (
	"encoding/json"
	"fmt"
	"io"

	"yapl/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// WriteTimings prints rep as a table or, with asJSON, as a single JSON line
// tagged with kind ("parse", "check", ...) and path.
func WriteTimings(w io.Writer, kind, path string, rep observ.Report, asJSON bool) error {
	if kind == "" {
		kind = "pipeline"
	}
	if asJSON {
		data, err := json.Marshal(timingPayload{Kind: kind, Path: path, TotalMS: rep.TotalMS, Phases: rep.Phases})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	_, err := io.WriteString(w, rep.Summary())
	return err
}
