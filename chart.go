package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"LineGraph/internal/logging"
	"LineGraph/internal/selection"
	"LineGraph/internal/series"
)

type graphStyle struct {
	height          float32
	lineThickness   float32
	verticalPadding float32
	gradientFrom    color.NRGBA
	gradientTo      color.NRGBA
}

func defaultGraphStyle() graphStyle {
	return graphStyle{
		height:          220,
		lineThickness:   6,
		verticalPadding: 40,
		gradientFrom:    color.NRGBA{R: 0xFF, G: 0x59, B: 0x12, A: 0xFF},
		gradientTo:      color.NRGBA{R: 0xFF, G: 0xA7, B: 0x24, A: 0xFF},
	}
}

// lineGraph draws one series and shows a selection overlay while the user drags across it.
type lineGraph struct {
	widget.BaseWidget
	points *series.Series
	style  graphStyle

	dragX    float32
	dragging bool
	selected int

	OnPointSelected func(series.Point)
	OnGestureEnd    func()
}

func newLineGraph(points *series.Series, style graphStyle) *lineGraph {
	g := &lineGraph{
		points:   points,
		style:    style,
		selected: -1,
	}
	g.ExtendBaseWidget(g)
	return g
}

// SetSeries replaces the plotted points.
func (g *lineGraph) SetSeries(points *series.Series) {
	g.points = points
	g.selected = -1
	g.recompute()
	g.Refresh()
}

func (g *lineGraph) Dragged(e *fyne.DragEvent) {
	g.dragX = e.Position.X
	g.dragging = true
	g.recompute()
	g.Refresh()
}

func (g *lineGraph) DragEnd() {
	g.dragging = false
	g.Refresh()
	if g.OnGestureEnd != nil {
		g.OnGestureEnd()
	}
}

// recompute is called whenever the drag position, the width, or the points change.
func (g *lineGraph) recompute() selection.Result {
	res := selection.Select(float64(g.dragX), float64(g.Size().Width), g.points)
	if !g.dragging || !res.OK || res.Index == g.selected {
		return res
	}
	g.selected = res.Index
	logging.Debugf("selected point %d at %s", res.Index, res.Label)
	if g.OnPointSelected != nil {
		g.OnPointSelected(g.points.At(res.Index))
	}
	return res
}

func (g *lineGraph) Resize(size fyne.Size) {
	g.BaseWidget.Resize(size)
	if g.dragging {
		g.recompute()
	}
}

func (g *lineGraph) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(g.style.gradientFrom)
	dot.Hide()
	r := &lineGraphRenderer{
		graph:   g,
		dot:     dot,
		overlay: newSelectionOverlay(),
	}
	r.updateSegments()
	r.Refresh()
	return r
}

type lineGraphRenderer struct {
	graph    *lineGraph
	segments []*canvas.Line
	dot      *canvas.Circle
	overlay  *selectionOverlay
}

func (r *lineGraphRenderer) Layout(size fyne.Size) {
	g := r.graph
	if g.points == nil || size.Width <= 0 || size.Height <= 0 {
		for _, line := range r.segments {
			line.Hide()
		}
		r.dot.Hide()
		r.overlay.hide()
		return
	}
	rng := g.points.Range()
	n := g.points.Len()
	if n == 1 {
		pos := plotPosition(g.points.First(), rng, size, g.style.verticalPadding)
		d := g.style.lineThickness
		r.dot.Resize(fyne.NewSize(d, d))
		r.dot.Move(fyne.NewPos(pos.X-d/2, pos.Y-d/2))
		r.dot.Show()
	} else {
		r.dot.Hide()
	}
	for i, line := range r.segments {
		line.Position1 = plotPosition(g.points.At(i), rng, size, g.style.verticalPadding)
		line.Position2 = plotPosition(g.points.At(i+1), rng, size, g.style.verticalPadding)
		line.StrokeWidth = g.style.lineThickness
		line.StrokeColor = lerpColor(g.style.gradientFrom, g.style.gradientTo, (float64(i)+0.5)/float64(len(r.segments)))
		line.Show()
	}
	if !g.dragging {
		r.overlay.hide()
		return
	}
	res := selection.Select(float64(g.dragX), float64(size.Width), g.points)
	r.overlay.layout(res, size)
}

func (r *lineGraphRenderer) MinSize() fyne.Size {
	return fyne.NewSize(50, r.graph.style.height)
}

func (r *lineGraphRenderer) Refresh() {
	r.updateSegments()
	for _, line := range r.segments {
		line.Refresh()
	}
	r.dot.Refresh()
	r.Layout(r.graph.Size())
	r.overlay.refresh()
}

// updateSegments keeps one line object per pair of adjacent points.
func (r *lineGraphRenderer) updateSegments() {
	targetLen := 0
	if r.graph.points != nil && r.graph.points.Len() > 1 {
		targetLen = r.graph.points.Len() - 1
	}
	currentLen := len(r.segments)
	if currentLen < targetLen {
		for i := currentLen; i < targetLen; i++ {
			line := canvas.NewLine(r.graph.style.gradientFrom)
			line.StrokeWidth = r.graph.style.lineThickness
			r.segments = append(r.segments, line)
		}
	} else if currentLen > targetLen {
		r.segments = r.segments[:targetLen]
	}
}

func (r *lineGraphRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.segments)+1+len(r.overlay.objects()))
	for _, line := range r.segments {
		objects = append(objects, line)
	}
	objects = append(objects, r.dot)
	return append(objects, r.overlay.objects()...)
}

func (r *lineGraphRenderer) Destroy() {}

// plotPosition maps a point into the canvas. The value axis leaves pad pixels above and below;
// a flat series is drawn through the vertical middle.
func plotPosition(p series.Point, rng series.Range, size fyne.Size, pad float32) fyne.Position {
	var fx float32
	if span := rng.Span(); span > 0 {
		fx = float32(float64(p.Date.Sub(rng.MinDate)) / float64(span))
	}
	fy := float32(0.5)
	if vs := rng.MaxValue - rng.MinValue; vs > 0 {
		fy = float32((p.Value - rng.MinValue) / vs)
	}
	drawH := size.Height - 2*pad
	if drawH < 0 {
		drawH = 0
	}
	return fyne.NewPos(fx*size.Width, pad+drawH*(1-fy))
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
