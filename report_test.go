package aqmeter

import (
	"bytes"
	"testing"
)

func TestWriteReport(t *testing.T) {
	b := new(bytes.Buffer)
	err := WriteReport(b, map[string]float64{
		"PM2.5": 35.0,
		"PM10":  80,
		"CO":    0.7,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `Pollutant  Concentration  AQI  Category
CO         0.7            N/A  N/A
PM10       80             63   Moderate
PM2.5      35             99   Moderate

Overall AQI: 99 (Moderate)
`
	if b.String() != want {
		t.Errorf("%q != %q", b.String(), want)
	}
}

func TestWriteReport_noneDefined(t *testing.T) {
	b := new(bytes.Buffer)
	if err := WriteReport(b, map[string]float64{"CO": 0.7}); err != nil {
		t.Fatal(err)
	}
	want := `Pollutant  Concentration  AQI  Category
CO         0.7            N/A  N/A

No supported pollutant concentrations provided to compute AQI.
`
	if b.String() != want {
		t.Errorf("%q != %q", b.String(), want)
	}
}
