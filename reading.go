package aqmeter

import (
	"fmt"
	"reflect"

	"github.com/ctessum/unit"
)

// concDims is the dimension signature of a mass concentration
// (mass length-3).
var concDims = unit.Dimensions{
	unit.MassDim:   1,
	unit.LengthDim: -3,
}

// Reading is a measured pollutant concentration.
type Reading struct {
	Pollutant     string
	Concentration *unit.Unit
}

// NewReading creates a reading from a concentration in μg m-3.
func NewReading(pollutant string, concentration float64) Reading {
	return Reading{
		Pollutant:     pollutant,
		Concentration: unit.New(concentration*1.0e-9, concDims), // μg m-3 in kg m-3
	}
}

// ComputeForReadings applies the calculator to each reading after
// checking that its concentration is dimensioned as a mass
// concentration. Later readings for the same pollutant overwrite
// earlier ones.
func ComputeForReadings(readings []Reading) (map[string]Index, error) {
	concs := make(map[string]float64, len(readings))
	for _, r := range readings {
		if !reflect.DeepEqual(r.Concentration.Dimensions(), concDims) {
			return nil, fmt.Errorf("aqmeter: %s concentration has dimensions %v; want mass concentration", r.Pollutant, r.Concentration.Dimensions())
		}
		concs[r.Pollutant] = r.Concentration.Value() * 1.0e9 // kg m-3 in μg m-3
	}
	return ComputeForPollutants(concs), nil
}
