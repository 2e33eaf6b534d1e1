// Package selection maps a horizontal drag position over a graph to the
// sampled point under it and describes the guideline drawn there.
package selection

import (
	"image/color"
	"math"
	"time"

	"LineGraph/internal/series"
)

// LabelLayout is 24-hour HH:MM followed by the AM/PM marker.
const LabelLayout = "15:04PM"

// Guideline geometry shared by the live overlay and the PNG snapshot.
const (
	LabelFontSize = 12
	GuideTop      = LabelFontSize + 10
	GuideBottom   = 250
	GuideStroke   = 2
	GuideDashOn   = 10
	GuideDashOff  = 10
)

var (
	LabelColor = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	GuideColor = color.NRGBA{R: 0xF2, G: 0x69, B: 0x35, A: 0xFF}
)

// Result is a recomputed selection. OffsetX is always the drag position;
// Label is empty and OK false when the position maps outside the series.
type Result struct {
	Index   int
	Label   string
	OffsetX float64
	OK      bool
}

// Index maps dragX over a canvas of the given width onto [0, count-1].
// It scales by count-1 and floors, so dragX == canvasWidth is the last point.
func Index(dragX, canvasWidth float64, count int) (int, bool) {
	if canvasWidth == 0 || count <= 0 {
		return -1, false
	}
	if bad(dragX) || bad(canvasWidth) || canvasWidth < 0 {
		return -1, false
	}
	if dragX < 0 || dragX > canvasWidth {
		return -1, false
	}
	widthPercentage := dragX / canvasWidth
	index := int(math.Floor(float64(count-1) * widthPercentage))
	if index < 0 || index > count-1 {
		return -1, false
	}
	return index, true
}

// Select recomputes the selection for one set of inputs.
func Select(dragX, canvasWidth float64, s *series.Series) Result {
	res := Result{Index: -1, OffsetX: dragX}
	if s == nil {
		return res
	}
	idx, ok := Index(dragX, canvasWidth, s.Len())
	if !ok {
		return res
	}
	res.Index = idx
	res.Label = FormatLabel(s.At(idx).Date)
	res.OK = true
	return res
}

// FormatLabel renders t in local time.
func FormatLabel(t time.Time) string {
	return t.Local().Format(LabelLayout)
}

// Dash is one painted stretch of a dashed vertical line.
type Dash struct {
	From, To float64
}

// Dashes splits [from, to] into on/off stretches starting with an "on" stretch.
func Dashes(from, to, on, off float64) []Dash {
	if to <= from || on <= 0 {
		return nil
	}
	if off < 0 {
		off = 0
	}
	var out []Dash
	for y := from; y < to; y += on + off {
		end := math.Min(y+on, to)
		out = append(out, Dash{From: y, To: end})
	}
	return out
}

// GuideDashes is the dash layout of the selection guideline.
func GuideDashes() []Dash {
	return Dashes(GuideTop, GuideBottom, GuideDashOn, GuideDashOff)
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
