package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sdft/dsp/spectrum"
)

// tabler is implemented by reports that have a table rendering.
type tabler interface {
	writeTable(w io.Writer) error
}

func render(w io.Writer, format string, report tabler) error {
	switch format {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if err := report.writeTable(tw); err != nil {
			return err
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func writeBins(w io.Writer, bins []spectrum.Bin) {
	fmt.Fprintln(w, "Bin\tFreq (Hz)\tMagnitude\tPhase (deg)\tLevel (dB)")
	for _, b := range bins {
		fmt.Fprintf(w, "%d\t%.2f\t%.6f\t%.2f\t%.2f\n", b.Index, b.Frequency, b.Magnitude, b.Phase, b.Level)
	}
}
