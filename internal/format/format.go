// Package format renders ranked results for terminal and export consumers.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vitaly-krugl/yaghpy/internal/rank"
)

// Value renders a metric value, printing whole numbers without a decimal
// point and ratios with the fewest digits that round-trip.
func Value(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteResults writes one "name:value" line per entry.
func WriteResults(w io.Writer, entries []rank.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s:%s\n", e.Name, Value(e.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Record is one exported ranking row.
type Record struct {
	Date         string  `json:"date"`
	Organization string  `json:"organization"`
	Action       string  `json:"action"`
	Repository   string  `json:"repository"`
	Value        float64 `json:"value"`
}

// WriteJSON writes formatted JSON to w.
func WriteJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}
