// Package aqmeter computes US EPA Air Quality Index sub-indices for
// particulate pollutants (PM2.5, PM10) by linear interpolation over the
// regulatory breakpoint tables.
package aqmeter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Index is the AQI calculation result for a single pollutant.
// Defined is false when the concentration fell outside every breakpoint
// range or the pollutant is not supported; that is a normal outcome,
// not an error.
type Index struct {
	Value   int
	Defined bool
}

func (ix Index) String() string {
	if !ix.Defined {
		return "N/A"
	}
	return strconv.Itoa(ix.Value)
}

// IndexForConcentration computes the AQI for a single pollutant
// concentration (μg m-3) by scanning the ordered table for the first
// range containing it, bounds inclusive, and interpolating linearly.
// The second return value is false when no range contains the
// concentration.
func IndexForConcentration(conc float64, table []Breakpoint) (int, bool) {
	for _, b := range table {
		if b.CLow <= conc && conc <= b.CHigh {
			aqi := float64(b.ILow) + float64(b.IHigh-b.ILow)/(b.CHigh-b.CLow)*(conc-b.CLow)
			return int(math.Round(aqi)), true
		}
	}
	return 0, false
}

// ComputeForPollutants applies the calculator to each reading, choosing
// the breakpoint table by the normalized pollutant name. Unrecognized
// pollutants and out-of-range concentrations produce undefined entries;
// every input key appears in the output.
func ComputeForPollutants(concs map[string]float64) map[string]Index {
	o := make(map[string]Index, len(concs))
	for name, conc := range concs {
		var ix Index
		if table, ok := breakpointsFor(name); ok {
			ix.Value, ix.Defined = IndexForConcentration(conc, table)
		}
		o[name] = ix
	}
	return o
}

// OverallIndex returns the maximum of the defined per-pollutant
// indices. The second return value is false when none are defined.
func OverallIndex(indices map[string]Index) (int, bool) {
	var defined []float64
	for _, ix := range indices {
		if ix.Defined {
			defined = append(defined, float64(ix.Value))
		}
	}
	if len(defined) == 0 {
		return 0, false
	}
	return int(floats.Max(defined)), true
}

// ParseConcentrations parses readings given in name=concentration form,
// such as "pm2.5=35.0".
func ParseConcentrations(pairs []string) (map[string]float64, error) {
	o := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		i := strings.Index(p, "=")
		if i < 0 {
			return nil, fmt.Errorf("aqmeter: reading %q is not in name=concentration form", p)
		}
		v, err := strconv.ParseFloat(p[i+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("aqmeter: invalid concentration for %q: %v", p[:i], err)
		}
		o[p[:i]] = v
	}
	return o, nil
}
