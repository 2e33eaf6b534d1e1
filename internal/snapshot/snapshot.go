// Package snapshot renders a series headless to an image, optionally with the
// selection guideline drawn at a fixed drag position.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"LineGraph/internal/selection"
	"LineGraph/internal/series"
)

// Options controls the rendered image. A negative DragX draws no selection.
type Options struct {
	Width           int
	Height          int
	LineThickness   float64
	VerticalPadding int
	LineColor       drawing.Color
	Background      drawing.Color
	DragX           float64
}

// DefaultOptions matches the on-screen graph.
func DefaultOptions() Options {
	return Options{
		Width:           390,
		Height:          260,
		LineThickness:   6,
		VerticalPadding: 40,
		LineColor:       drawing.ColorFromHex("FF5912"),
		Background:      drawing.ColorWhite,
		DragX:           -1,
	}
}

// Render draws the series through go-chart and paints the selection on top.
func Render(s *series.Series, opts Options) (image.Image, error) {
	if s == nil {
		return nil, series.ErrEmpty
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("snapshot size %dx%d is not drawable", opts.Width, opts.Height)
	}
	rng := s.Range()
	times := make([]time.Time, s.Len())
	values := make([]float64, s.Len())
	for i, p := range s.Points() {
		times[i] = p.Date
		values[i] = p.Value
	}
	minY, maxY := rng.MinValue, rng.MaxValue
	if maxY <= minY {
		minY, maxY = minY-0.5, maxY+0.5
	}
	bg := chart.Style{
		FillColor: opts.Background,
		Padding:   chart.Box{Top: opts.VerticalPadding, Bottom: opts.VerticalPadding},
	}
	xAxis := chart.XAxis{
		Style: chart.Hidden(),
		Range: &chart.ContinuousRange{Min: chart.TimeToFloat64(rng.MinDate), Max: chart.TimeToFloat64(rng.MaxDate)},
	}
	yAxis := chart.YAxis{
		Style: chart.Hidden(),
		Range: &chart.ContinuousRange{Min: minY, Max: maxY},
	}
	line := chart.TimeSeries{
		Name:    "points",
		XValues: times,
		YValues: values,
		Style:   chart.Style{StrokeColor: opts.LineColor, StrokeWidth: opts.LineThickness},
	}
	ch := chart.Chart{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: bg,
		Canvas:     chart.Style{FillColor: opts.Background},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []chart.Series{line},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	if opts.DragX >= 0 {
		drawSelection(rgba, selection.Select(opts.DragX, float64(b.Dx()), s))
	}
	return rgba, nil
}

// drawSelection paints the guideline pixel-exact and the label with a 7x13 bitmap face.
func drawSelection(dst *image.RGBA, res selection.Result) {
	b := dst.Bounds()
	guide := color.RGBAModel.Convert(selection.GuideColor).(color.RGBA)
	x0 := int(math.Round(res.OffsetX)) - selection.GuideStroke/2
	bottom := math.Min(selection.GuideBottom, float64(b.Dy()))
	for _, d := range selection.Dashes(selection.GuideTop, bottom, selection.GuideDashOn, selection.GuideDashOff) {
		for y := int(d.From); y < int(math.Ceil(d.To)); y++ {
			for x := x0; x < x0+selection.GuideStroke; x++ {
				if image.Pt(b.Min.X+x, b.Min.Y+y).In(b) {
					dst.SetRGBA(b.Min.X+x, b.Min.Y+y, guide)
				}
			}
		}
	}
	if res.Label == "" {
		return
	}
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(selection.LabelColor), Face: basicfont.Face7x13}
	w := dr.MeasureString(res.Label).Ceil()
	x := b.Min.X + int(math.Round(res.OffsetX)) - w/2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(b.Min.Y + selection.LabelFontSize)}
	dr.DrawString(res.Label)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}
