package main

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LineGraph/internal/config"
	"LineGraph/internal/selection"
	"LineGraph/internal/series"
)

var base = time.Date(2022, 1, 1, 0, 0, 0, 0, time.Local)

func fivePointSeries(t *testing.T) *series.Series {
	t.Helper()
	pts := make([]series.Point, 5)
	for i := range pts {
		pts[i] = series.Point{Date: base.Add(time.Duration(i) * time.Hour), Value: float64(10 * (i + 1))}
	}
	s, err := series.New(pts)
	require.NoError(t, err)
	return s
}

func walk(o fyne.CanvasObject, fn func(fyne.CanvasObject)) {
	fn(o)
	if c, ok := o.(*fyne.Container); ok {
		for _, child := range c.Objects {
			walk(child, fn)
		}
	}
}

func drag(g *lineGraph, x float32) {
	g.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, 100)}})
}

func TestLineGraphDragShowsSelection(t *testing.T) {
	test.NewTempApp(t)
	s := fivePointSeries(t)
	g := newLineGraph(s, defaultGraphStyle())
	g.Resize(fyne.NewSize(100, 220))
	r := test.WidgetRenderer(g).(*lineGraphRenderer)

	var picked []float64
	g.OnPointSelected = func(p series.Point) { picked = append(picked, p.Value) }

	assert.False(t, r.overlay.label.Visible(), "overlay hidden until a drag starts")

	drag(g, 50)
	assert.True(t, r.overlay.label.Visible())
	assert.Equal(t, selection.FormatLabel(s.At(2).Date), r.overlay.label.Text)
	require.NotEmpty(t, r.overlay.dashes)
	first := r.overlay.dashes[0]
	assert.True(t, first.Visible())
	assert.Equal(t, float32(50), first.Position1.X)
	assert.Equal(t, float32(selection.GuideTop), first.Position1.Y)

	drag(g, 51) // same index, no new callback
	drag(g, 100)
	assert.Equal(t, []float64{30, 50}, picked)
}

func TestLineGraphDragPastEdgeBlanksLabel(t *testing.T) {
	test.NewTempApp(t)
	g := newLineGraph(fivePointSeries(t), defaultGraphStyle())
	g.Resize(fyne.NewSize(100, 220))
	r := test.WidgetRenderer(g).(*lineGraphRenderer)

	drag(g, 130)
	assert.Empty(t, r.overlay.label.Text)
	assert.Equal(t, float32(130), r.overlay.dashes[0].Position1.X, "guideline follows the finger")
}

func TestLineGraphDragEndHidesOverlay(t *testing.T) {
	test.NewTempApp(t)
	g := newLineGraph(fivePointSeries(t), defaultGraphStyle())
	g.Resize(fyne.NewSize(100, 220))
	r := test.WidgetRenderer(g).(*lineGraphRenderer)

	ended := false
	g.OnGestureEnd = func() { ended = true }
	drag(g, 10)
	g.DragEnd()

	assert.True(t, ended)
	assert.False(t, r.overlay.label.Visible())
	for _, line := range r.overlay.dashes {
		assert.False(t, line.Visible())
	}
}

func TestLineGraphGuidelineStopsAtCanvasBottom(t *testing.T) {
	test.NewTempApp(t)
	g := newLineGraph(fivePointSeries(t), defaultGraphStyle())
	g.Resize(fyne.NewSize(100, 220))
	r := test.WidgetRenderer(g).(*lineGraphRenderer)

	drag(g, 20)
	for _, line := range r.overlay.dashes {
		if line.Visible() {
			assert.LessOrEqual(t, line.Position2.Y, float32(220))
		}
	}
}

func TestLineGraphSegments(t *testing.T) {
	test.NewTempApp(t)
	g := newLineGraph(fivePointSeries(t), defaultGraphStyle())
	g.Resize(fyne.NewSize(200, 220))
	r := test.WidgetRenderer(g).(*lineGraphRenderer)
	require.Len(t, r.segments, 4)
	assert.False(t, r.dot.Visible())

	single, err := series.New([]series.Point{{Date: base, Value: 5}})
	require.NoError(t, err)
	g.SetSeries(single)
	assert.Len(t, r.segments, 0)
	assert.True(t, r.dot.Visible())
}

func TestPlotPosition(t *testing.T) {
	s := fivePointSeries(t)
	rng := s.Range()
	size := fyne.NewSize(200, 220)

	first := plotPosition(s.First(), rng, size, 40)
	assert.Equal(t, float32(0), first.X)
	assert.Equal(t, float32(180), first.Y, "lowest value sits on the bottom padding")

	last := plotPosition(s.Last(), rng, size, 40)
	assert.Less(t, last.X, float32(200))
	assert.Greater(t, last.X, float32(199))
	assert.Equal(t, float32(40), last.Y, "highest value sits on the top padding")

	flat := series.Range{MinDate: base, MaxDate: base.Add(time.Hour), MinValue: 3, MaxValue: 3}
	mid := plotPosition(series.Point{Date: base, Value: 3}, flat, size, 40)
	assert.Equal(t, float32(110), mid.Y)
}

func TestLerpColor(t *testing.T) {
	a := color.NRGBA{R: 0xFF, G: 0x59, B: 0x12, A: 0xFF}
	b := color.NRGBA{R: 0xFF, G: 0xA7, B: 0x24, A: 0xFF}
	assert.Equal(t, a, lerpColor(a, b, 0))
	assert.Equal(t, b, lerpColor(a, b, 1))
	assert.Equal(t, b, lerpColor(a, b, 3))
}

func TestCreateGraphScreenUpdatesValue(t *testing.T) {
	test.NewTempApp(t)
	cfg, err := config.Load("")
	require.NoError(t, err)
	s := fivePointSeries(t)

	screen := createGraphScreen(cfg, s)
	screen.Resize(fyne.NewSize(100, 400))

	var valueText *canvas.Text
	var graph *lineGraph
	walk(screen, func(o fyne.CanvasObject) {
		switch v := o.(type) {
		case *canvas.Text:
			valueText = v
		case *lineGraph:
			graph = v
		}
	})
	require.NotNil(t, valueText)
	require.NotNil(t, graph)
	assert.Equal(t, "10", valueText.Text)

	drag(graph, graph.Size().Width)
	assert.Equal(t, "50", valueText.Text)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "102282.92349389535", formatValue(102282.92349389535))
	assert.Equal(t, "0", formatValue(0))
}
