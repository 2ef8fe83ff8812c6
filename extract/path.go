package extract

import (
	"math"

	"github.com/stratapdf/strata/model"
)

// ExtractedPath is one painted vector path. Command coordinates are in
// output space (top-left origin); StrokeColor and FillColor are nil when
// the paint operator did not stroke or fill.
type ExtractedPath struct {
	Commands    []model.PathCommand
	StrokeColor *model.RGBA
	FillColor   *model.RGBA
	// LineWidth is the stroke width scaled by the CTM's horizontal
	// scale factor.
	LineWidth float64
	Bounds    model.BBox
	// Transform is the CTM that produced the output coordinates,
	// retained for consumers that need the original matrix.
	Transform model.Matrix
	// FillRule is set for filled paths: nonzero for f/F/B/b, evenodd
	// for the starred variants.
	FillRule model.FillRule
	// Seq is the emission sequence number, shared with texts and images.
	Seq int
}

// transformPath maps every coordinate of every command through the CTM,
// flips into top-left-origin output space, and accumulates the bounding
// box over all transformed points, control points included. The box is a
// loose bound for curves, not a tight curve bound.
func transformPath(
	commands []model.PathCommand,
	stroke, fill *model.RGBA,
	lineWidth float64,
	ctm model.Matrix,
	pageHeight float64,
) ExtractedPath {
	acc := newBoundsAccumulator()

	out := make([]model.PathCommand, len(commands))
	for i, cmd := range commands {
		switch cmd.Type {
		case model.PathCurveTo:
			x1, y1 := mapPoint(ctm, pageHeight, cmd.X1, cmd.Y1)
			x2, y2 := mapPoint(ctm, pageHeight, cmd.X2, cmd.Y2)
			x, y := mapPoint(ctm, pageHeight, cmd.X, cmd.Y)
			acc.add(x1, y1)
			acc.add(x2, y2)
			acc.add(x, y)
			out[i] = model.CurveTo(x1, y1, x2, y2, x, y)
		case model.PathClosePath:
			out[i] = cmd
		default: // MoveTo, LineTo
			x, y := mapPoint(ctm, pageHeight, cmd.X, cmd.Y)
			acc.add(x, y)
			out[i] = model.PathCommand{Type: cmd.Type, X: x, Y: y}
		}
	}

	return ExtractedPath{
		Commands:    out,
		StrokeColor: stroke,
		FillColor:   fill,
		LineWidth:   lineWidth * math.Abs(ctm.ScaleX()),
		Bounds:      acc.bbox(),
		Transform:   ctm,
	}
}

// mapPoint applies the CTM and the page-height Y flip. The flip happens
// here and only here: exactly once per coordinate on its way from user
// space to output space.
func mapPoint(ctm model.Matrix, pageHeight, x, y float64) (float64, float64) {
	p := ctm.Transform(model.Point{X: x, Y: y})
	return p.X, pageHeight - p.Y
}

// boundsAccumulator keeps a running min/max over transformed points.
type boundsAccumulator struct {
	minX, minY, maxX, maxY float64
	any                    bool
}

func newBoundsAccumulator() boundsAccumulator {
	return boundsAccumulator{
		minX: math.MaxFloat64,
		minY: math.MaxFloat64,
		maxX: -math.MaxFloat64,
		maxY: -math.MaxFloat64,
	}
}

func (a *boundsAccumulator) add(x, y float64) {
	a.minX = math.Min(a.minX, x)
	a.minY = math.Min(a.minY, y)
	a.maxX = math.Max(a.maxX, x)
	a.maxY = math.Max(a.maxY, y)
	a.any = true
}

// bbox returns the accumulated box, floored at 1×1. A path with no
// coordinate-bearing commands (a lone closepath) yields a unit box at
// the origin.
func (a *boundsAccumulator) bbox() model.BBox {
	if !a.any {
		return model.BBox{}.ClampPositive()
	}
	return model.NewBBox(a.minX, a.minY, a.maxX-a.minX, a.maxY-a.minY).ClampPositive()
}
