package model

import "encoding/json"

// PathCommandType identifies the kind of a path command.
type PathCommandType string

const (
	// PathMoveTo starts a new subpath.
	PathMoveTo PathCommandType = "moveTo"
	// PathLineTo draws a line to a point.
	PathLineTo PathCommandType = "lineTo"
	// PathCurveTo draws a cubic Bézier curve.
	PathCurveTo PathCommandType = "curveTo"
	// PathClosePath closes the current subpath.
	PathClosePath PathCommandType = "closePath"
)

// PathCommand is one step of a vector path. For MoveTo and LineTo only
// X and Y are meaningful; CurveTo additionally carries the two cubic
// Bézier control points (X1,Y1) and (X2,Y2); ClosePath carries nothing.
type PathCommand struct {
	Type PathCommandType
	X1   float64
	Y1   float64
	X2   float64
	Y2   float64
	X    float64
	Y    float64
}

// MoveTo creates a moveTo command.
func MoveTo(x, y float64) PathCommand {
	return PathCommand{Type: PathMoveTo, X: x, Y: y}
}

// LineTo creates a lineTo command.
func LineTo(x, y float64) PathCommand {
	return PathCommand{Type: PathLineTo, X: x, Y: y}
}

// CurveTo creates a cubic Bézier curveTo command with control points
// (x1, y1) and (x2, y2) and endpoint (x, y).
func CurveTo(x1, y1, x2, y2, x, y float64) PathCommand {
	return PathCommand{Type: PathCurveTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y}
}

// ClosePath creates a closePath command.
func ClosePath() PathCommand {
	return PathCommand{Type: PathClosePath}
}

// MarshalJSON emits only the fields relevant to the command type, matching
// the tagged representation consumed downstream:
//
//	{"type":"moveTo","x":1,"y":2}
//	{"type":"curveTo","x1":..,"y1":..,"x2":..,"y2":..,"x":..,"y":..}
//	{"type":"closePath"}
func (c PathCommand) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case PathCurveTo:
		return json.Marshal(struct {
			Type PathCommandType `json:"type"`
			X1   float64         `json:"x1"`
			Y1   float64         `json:"y1"`
			X2   float64         `json:"x2"`
			Y2   float64         `json:"y2"`
			X    float64         `json:"x"`
			Y    float64         `json:"y"`
		}{c.Type, c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y})
	case PathClosePath:
		return json.Marshal(struct {
			Type PathCommandType `json:"type"`
		}{c.Type})
	default:
		return json.Marshal(struct {
			Type PathCommandType `json:"type"`
			X    float64         `json:"x"`
			Y    float64         `json:"y"`
		}{c.Type, c.X, c.Y})
	}
}

// UnmarshalJSON accepts the tagged representation produced by MarshalJSON.
func (c *PathCommand) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type PathCommandType `json:"type"`
		X1   float64         `json:"x1"`
		Y1   float64         `json:"y1"`
		X2   float64         `json:"x2"`
		Y2   float64         `json:"y2"`
		X    float64         `json:"x"`
		Y    float64         `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = PathCommand(raw)
	return nil
}

// FillRule selects the path fill rule.
type FillRule string

const (
	// FillNonZero is the nonzero winding rule (f, B, b operators).
	FillNonZero FillRule = "nonzero"
	// FillEvenOdd is the even-odd rule (f*, B*, b* operators).
	FillEvenOdd FillRule = "evenodd"
)

// PathData holds the command list and fill rule for a vector layer.
type PathData struct {
	Commands []PathCommand `json:"commands"`
	FillRule FillRule      `json:"fillRule,omitempty"`
}

// LayerType identifies the kind of a layer object.
type LayerType string

const (
	LayerTypeText   LayerType = "text"
	LayerTypeImage  LayerType = "image"
	LayerTypeVector LayerType = "vector"
	LayerTypeShape  LayerType = "shape"
)

// SourceType indicates how a layer was created.
type SourceType string

const (
	SourceExtracted SourceType = "extracted"
	SourceManual    SourceType = "manual"
	SourceImported  SourceType = "imported"
)

// LayerRole classifies a layer's function on the page.
type LayerRole string

const (
	RoleBackground LayerRole = "background"
	RoleContent    LayerRole = "content"
	RoleHeader     LayerRole = "header"
	RoleFooter     LayerRole = "footer"
	RoleAnnotation LayerRole = "annotation"
)

// TextAlign is the horizontal alignment of a text layer.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// LayerObject is a discrete visual element on a page: the generic
// representation consumed by document assembly and export. Field names
// follow the downstream JSON contract.
type LayerObject struct {
	ID      string    `json:"id"`
	Type    LayerType `json:"type"`
	Bounds  BBox      `json:"bounds"`
	Visible bool      `json:"visible"`
	Locked  bool      `json:"locked"`
	ZIndex  int       `json:"zIndex"`
	Opacity float64   `json:"opacity"`

	// Text fields. Extraction fills content, font, color, and alignment;
	// the decoration, transform, spacing, and background fields belong to
	// manual editing downstream and stay empty here.
	Content         string    `json:"content,omitempty"`
	FontFamily      string    `json:"fontFamily,omitempty"`
	FontSize        float64   `json:"fontSize,omitempty"`
	FontWeight      int       `json:"fontWeight,omitempty"`
	FontStyle       string    `json:"fontStyle,omitempty"`
	Color           string    `json:"color,omitempty"`
	TextAlign       TextAlign `json:"textAlign,omitempty"`
	TextDecoration  string    `json:"textDecoration,omitempty"`
	TextTransform   string    `json:"textTransform,omitempty"`
	LineHeight      float64   `json:"lineHeight,omitempty"`
	LetterSpacing   float64   `json:"letterSpacing,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`

	// Image fields. Extraction carries the encoded bytes inline; URL and
	// path references come from imported or manually placed images.
	ImageData []byte `json:"imageData,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`

	// Vector and shape fields
	StrokeColor string    `json:"strokeColor,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	FillColor   string    `json:"fillColor,omitempty"`
	PathData    *PathData `json:"pathData,omitempty"`
	ShapeType   string    `json:"shapeType,omitempty"`

	Transform  *Matrix    `json:"transform,omitempty"`
	SourceType SourceType `json:"sourceType"`
	Role       LayerRole  `json:"role"`
}
