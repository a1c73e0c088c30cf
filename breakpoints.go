package aqmeter

import "strings"

// Breakpoint is one row of a regulatory AQI breakpoint table: an
// inclusive concentration range (μg m-3) and the index range it maps to.
type Breakpoint struct {
	CLow, CHigh float64
	ILow, IHigh int
}

// PM25Breakpoints is the US EPA breakpoint table for PM2.5
// (24-hour average, μg m-3).
var PM25Breakpoints = []Breakpoint{
	{0.0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 350.4, 301, 400},
	{350.5, 500.4, 401, 500},
}

// PM10Breakpoints is the US EPA breakpoint table for PM10
// (24-hour average, μg m-3). The published table uses integer bounds,
// so adjacent ranges are separated by unit gaps (54/55, 354/355);
// concentrations falling in a gap are undefined.
var PM10Breakpoints = []Breakpoint{
	{0, 54, 0, 50},
	{55, 154, 51, 100},
	{155, 254, 101, 150},
	{255, 354, 151, 200},
	{355, 424, 201, 300},
	{425, 504, 301, 400},
	{505, 604, 401, 500},
}

// breakpointsFor returns the breakpoint table for the given pollutant
// identifier. Identifiers are trimmed and matched case-insensitively.
func breakpointsFor(pollutant string) ([]Breakpoint, bool) {
	switch strings.ToLower(strings.TrimSpace(pollutant)) {
	case "pm2.5", "pm25":
		return PM25Breakpoints, true
	case "pm10":
		return PM10Breakpoints, true
	}
	return nil, false
}
