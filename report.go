package aqmeter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// WriteReport writes an aligned table of pollutant concentrations with
// their AQI values and severity bands, followed by the overall AQI.
// Rows are ordered by pollutant name.
func WriteReport(w io.Writer, concs map[string]float64) error {
	indices := ComputeForPollutants(concs)

	names := make([]string, 0, len(concs))
	for name := range concs {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Pollutant\tConcentration\tAQI\tCategory")
	for _, name := range names {
		ix := indices[name]
		cat := "N/A"
		if ix.Defined {
			cat = CategoryForIndex(ix.Value).String()
		}
		fmt.Fprintf(tw, "%s\t%g\t%s\t%s\n", name, concs[name], ix, cat)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if overall, ok := OverallIndex(indices); ok {
		_, err := fmt.Fprintf(w, "\nOverall AQI: %d (%s)\n", overall, CategoryForIndex(overall))
		return err
	}
	_, err := fmt.Fprint(w, "\nNo supported pollutant concentrations provided to compute AQI.\n")
	return err
}
