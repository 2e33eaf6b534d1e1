package main

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LineGraph/internal/selection"
)

// selectionOverlay is the timestamp label and dashed guideline that follow the drag position.
type selectionOverlay struct {
	label  *canvas.Text
	dashes []*canvas.Line
	objs   []fyne.CanvasObject
}

func newSelectionOverlay() *selectionOverlay {
	label := canvas.NewText("", selection.LabelColor)
	label.TextSize = selection.LabelFontSize
	o := &selectionOverlay{label: label}
	for range selection.GuideDashes() {
		line := canvas.NewLine(selection.GuideColor)
		line.StrokeWidth = selection.GuideStroke
		o.dashes = append(o.dashes, line)
	}
	o.objs = append(o.objs, label)
	for _, line := range o.dashes {
		o.objs = append(o.objs, line)
	}
	o.hide()
	return o
}

// layout centers the label on the drag position and lays the guideline below it.
// The guideline is cut at the bottom of the canvas.
func (o *selectionOverlay) layout(res selection.Result, size fyne.Size) {
	x := float32(res.OffsetX)
	o.label.Text = res.Label
	w := o.label.MinSize().Width
	o.label.Move(fyne.NewPos(x-w/2, 0))
	o.label.Show()

	bottom := math.Min(selection.GuideBottom, float64(size.Height))
	dashes := selection.Dashes(selection.GuideTop, bottom, selection.GuideDashOn, selection.GuideDashOff)
	for i, line := range o.dashes {
		if i >= len(dashes) {
			line.Hide()
			continue
		}
		line.Position1 = fyne.NewPos(x, float32(dashes[i].From))
		line.Position2 = fyne.NewPos(x, float32(dashes[i].To))
		line.Show()
	}
}

func (o *selectionOverlay) hide() {
	o.label.Hide()
	for _, line := range o.dashes {
		line.Hide()
	}
}

func (o *selectionOverlay) refresh() {
	o.label.Refresh()
	for _, line := range o.dashes {
		line.Refresh()
	}
}

func (o *selectionOverlay) objects() []fyne.CanvasObject { return o.objs }
