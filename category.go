package aqmeter

import "image/color"

// Category is one of the six EPA AQI severity bands.
type Category int

const (
	Good Category = iota
	Moderate
	UnhealthyForSensitiveGroups
	Unhealthy
	VeryUnhealthy
	Hazardous
)

// CategoryForIndex maps an AQI value to its severity band using the
// fixed regulatory thresholds; everything above 300 is Hazardous.
// The result is only meaningful for index >= 0.
func CategoryForIndex(index int) Category {
	switch {
	case index <= 50:
		return Good
	case index <= 100:
		return Moderate
	case index <= 150:
		return UnhealthyForSensitiveGroups
	case index <= 200:
		return Unhealthy
	case index <= 300:
		return VeryUnhealthy
	default:
		return Hazardous
	}
}

func (c Category) String() string {
	switch c {
	case Good:
		return "Good"
	case Moderate:
		return "Moderate"
	case UnhealthyForSensitiveGroups:
		return "Unhealthy for Sensitive Groups"
	case Unhealthy:
		return "Unhealthy"
	case VeryUnhealthy:
		return "Very Unhealthy"
	case Hazardous:
		return "Hazardous"
	}
	return "Unknown"
}

// Color returns the conventional display color for the band.
func (c Category) Color() color.NRGBA {
	switch c {
	case Good:
		return color.NRGBA{R: 0x00, G: 0xe4, B: 0x00, A: 0xff}
	case Moderate:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	case UnhealthyForSensitiveGroups:
		return color.NRGBA{R: 0xff, G: 0x7e, B: 0x00, A: 0xff}
	case Unhealthy:
		return color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	case VeryUnhealthy:
		return color.NRGBA{R: 0x8f, G: 0x3f, B: 0x97, A: 0xff}
	case Hazardous:
		return color.NRGBA{R: 0x7e, G: 0x00, B: 0x23, A: 0xff}
	}
	return color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
}
