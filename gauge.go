package aqmeter

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// categoryColorMap maps AQI values on [0, 500] to the display color of
// their severity band.
type categoryColorMap struct {
	min, max float64
	alpha    float64
}

func newCategoryColorMap() palette.ColorMap {
	return &categoryColorMap{min: 0, max: 500, alpha: 1}
}

func (m *categoryColorMap) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if v < m.min {
		return nil, palette.ErrUnderflow
	}
	if v > m.max {
		return nil, palette.ErrOverflow
	}
	c := CategoryForIndex(int(math.Round(v))).Color()
	c.A = uint8(m.alpha * math.MaxUint8)
	return c, nil
}

func (m *categoryColorMap) Min() float64 { return m.min }
func (m *categoryColorMap) SetMin(min float64) { m.min = min }
func (m *categoryColorMap) Max() float64 { return m.max }
func (m *categoryColorMap) SetMax(max float64) { m.max = max }
func (m *categoryColorMap) Alpha() float64 { return m.alpha }
func (m *categoryColorMap) SetAlpha(a float64) { m.alpha = a }

func (m *categoryColorMap) Palette(colors int) palette.Palette {
	o := make(categoryPalette, colors)
	for i := range o {
		v := m.min
		if colors > 1 {
			v += (m.max - m.min) * float64(i) / float64(colors-1)
		}
		c, err := m.At(v)
		if err != nil {
			panic(err)
		}
		o[i] = c
	}
	return o
}

type categoryPalette []color.Color

func (p categoryPalette) Colors() []color.Color { return p }

// Gauge renders the 0-500 AQI scale as a horizontal strip colored by
// severity band, with a pointer at the given index, and returns the
// result as PNG data. Indices outside [0, 500] are clamped.
func Gauge(index int) ([]byte, error) {
	if index < 0 {
		index = 0
	}
	if index > 500 {
		index = 500
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Add(&plotter.ColorBar{ColorMap: newCategoryColorMap()})
	p.HideY()
	p.X.Padding = 0

	pointer, err := plotter.NewLine(plotter.XYs{
		{X: float64(index), Y: 0},
		{X: float64(index), Y: 1},
	})
	if err != nil {
		return nil, err
	}
	pointer.Width = vg.Points(2)
	pointer.Color = color.Black
	p.Add(pointer)

	img := vgimg.New(600, 80)
	dc := draw.New(img)
	p.Draw(dc)
	b := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// GaugeBase64 renders the gauge for the given index and encodes the PNG
// in base64 for embedding in data URLs.
func GaugeBase64(index int) (string, error) {
	b, err := Gauge(index)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
