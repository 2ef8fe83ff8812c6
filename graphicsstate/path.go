package graphicsstate

import "github.com/stratapdf/strata/model"

// Builder accumulates path construction operators into a command list.
// Coordinates stay in user space; transformation to output space happens
// once, when a paint operator finalizes the path.
type Builder struct {
	commands []model.PathCommand

	// start is the origin of the current subpath, for ClosePath and re.
	start model.Point
	// current is the current point, consumed by the v and y shorthands.
	current model.Point
}

// NewBuilder creates an empty path builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath (m operator).
func (b *Builder) MoveTo(x, y float64) {
	b.commands = append(b.commands, model.MoveTo(x, y))
	b.start = model.Point{X: x, Y: y}
	b.current = b.start
}

// LineTo appends a line segment (l operator).
func (b *Builder) LineTo(x, y float64) {
	b.commands = append(b.commands, model.LineTo(x, y))
	b.current = model.Point{X: x, Y: y}
}

// CurveTo appends a cubic Bézier curve with explicit control points
// (c operator).
func (b *Builder) CurveTo(x1, y1, x2, y2, x, y float64) {
	b.commands = append(b.commands, model.CurveTo(x1, y1, x2, y2, x, y))
	b.current = model.Point{X: x, Y: y}
}

// CurveToV appends a cubic Bézier curve whose first control point is the
// current point (v operator).
func (b *Builder) CurveToV(x2, y2, x, y float64) {
	b.CurveTo(b.current.X, b.current.Y, x2, y2, x, y)
}

// CurveToY appends a cubic Bézier curve whose second control point
// coincides with the endpoint (y operator).
func (b *Builder) CurveToY(x1, y1, x, y float64) {
	b.CurveTo(x1, y1, x, y, x, y)
}

// Close closes the current subpath (h operator) and moves the current
// point back to the subpath start.
func (b *Builder) Close() {
	b.commands = append(b.commands, model.ClosePath())
	b.current = b.start
}

// Rect appends a complete rectangle subpath (re operator): a move to the
// origin corner, three lines, and a close. The subpath start and current
// point both reset to (x, y).
func (b *Builder) Rect(x, y, w, h float64) {
	b.commands = append(b.commands,
		model.MoveTo(x, y),
		model.LineTo(x+w, y),
		model.LineTo(x+w, y+h),
		model.LineTo(x, y+h),
		model.ClosePath(),
	)
	b.start = model.Point{X: x, Y: y}
	b.current = b.start
}

// Commands returns the accumulated commands. The slice is owned by the
// builder until Clear.
func (b *Builder) Commands() []model.PathCommand {
	return b.commands
}

// IsEmpty reports whether no commands have accumulated.
func (b *Builder) IsEmpty() bool {
	return len(b.commands) == 0
}

// Clear discards the in-progress path (after painting, or for the n
// operator).
func (b *Builder) Clear() {
	b.commands = nil
}
