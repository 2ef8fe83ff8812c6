package extract

import (
	"fmt"
	"strings"

	"github.com/stratapdf/strata/contentstream"
	"github.com/stratapdf/strata/core"
	"github.com/stratapdf/strata/graphicsstate"
	"github.com/stratapdf/strata/model"
)

// Interpreter walks a page's operator stream in a single pass, tracking
// graphics state and emitting positioned text runs, vector paths, and
// placed images. One interpreter serves one page; it holds no state that
// outlives the page, so pages can be interpreted concurrently with one
// interpreter each.
type Interpreter struct {
	pageHeight float64

	stack *graphicsstate.Stack
	path  *graphicsstate.Builder

	texts  []ExtractedText
	paths  []ExtractedPath
	images []ExtractedImage

	resources map[string]ImageResource

	// seq numbers elements at the moment of emission so projection can
	// reconstruct true paint order across texts, paths, and images.
	seq int
}

// NewInterpreter creates an interpreter for one page. The page height,
// in PDF points, anchors the flip from PDF's bottom-left origin to the
// top-left origin of output space.
func NewInterpreter(pageHeight float64) *Interpreter {
	return &Interpreter{
		pageHeight: pageHeight,
		stack:      graphicsstate.NewStack(),
		path:       graphicsstate.NewBuilder(),
	}
}

// RegisterImage makes an XObject image resource available to the Do
// operator under its resource name. Do with an unregistered name is
// ignored.
func (ip *Interpreter) RegisterImage(name string, res ImageResource) {
	if ip.resources == nil {
		ip.resources = make(map[string]ImageResource)
	}
	ip.resources[name] = res
}

// Process interprets an already-decoded operator stream. It never fails:
// malformed operators degrade to no-ops and unrecognized operators are
// skipped, so one producer quirk cannot abort the page.
func (ip *Interpreter) Process(ops []contentstream.Operation) {
	for _, op := range ops {
		ip.processOperation(op)
	}
}

// ProcessBytes tokenizes raw content-stream bytes and interprets them.
// The returned error only ever reports that the stream could not be
// tokenized at all; callers handle that page via a fallback path.
func (ip *Interpreter) ProcessBytes(data []byte) error {
	ops, err := contentstream.NewParser(data).Parse()
	if err != nil {
		return fmt.Errorf("decode content stream: %w", err)
	}
	ip.Process(ops)
	return nil
}

// Texts returns the extracted text runs in emission order.
func (ip *Interpreter) Texts() []ExtractedText {
	return ip.texts
}

// Paths returns the extracted vector paths in emission order.
func (ip *Interpreter) Paths() []ExtractedPath {
	return ip.paths
}

// Images returns the placed images in emission order.
func (ip *Interpreter) Images() []ExtractedImage {
	return ip.images
}

func (ip *Interpreter) state() *graphicsstate.State {
	return ip.stack.Top()
}

func (ip *Interpreter) nextSeq() int {
	s := ip.seq
	ip.seq++
	return s
}

// processOperation dispatches one operator. Operators with too few
// operands are skipped without mutation or emission; non-numeric
// operands in numeric positions read as 0.
func (ip *Interpreter) processOperation(op contentstream.Operation) {
	ops := op.Operands

	switch op.Operator {
	// Graphics state
	case "q":
		ip.stack.Save()
	case "Q":
		ip.stack.Restore()
	case "cm":
		if len(ops) >= 6 {
			ip.state().Transform(operandsToMatrix(ops))
		}
	case "w":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().LineWidth = v
		}

	// Path construction
	case "m":
		if x, y, ok := floatPair(ops); ok {
			ip.path.MoveTo(x, y)
		}
	case "l":
		if x, y, ok := floatPair(ops); ok {
			ip.path.LineTo(x, y)
		}
	case "c":
		if len(ops) >= 6 {
			ip.path.CurveTo(
				floatAt(ops, 0), floatAt(ops, 1),
				floatAt(ops, 2), floatAt(ops, 3),
				floatAt(ops, 4), floatAt(ops, 5),
			)
		}
	case "v":
		if len(ops) >= 4 {
			ip.path.CurveToV(
				floatAt(ops, 0), floatAt(ops, 1),
				floatAt(ops, 2), floatAt(ops, 3),
			)
		}
	case "y":
		if len(ops) >= 4 {
			ip.path.CurveToY(
				floatAt(ops, 0), floatAt(ops, 1),
				floatAt(ops, 2), floatAt(ops, 3),
			)
		}
	case "h":
		ip.path.Close()
	case "re":
		if len(ops) >= 4 {
			ip.path.Rect(
				floatAt(ops, 0), floatAt(ops, 1),
				floatAt(ops, 2), floatAt(ops, 3),
			)
		}

	// Path painting
	case "S":
		ip.paint(false, true, false, "")
	case "s":
		ip.paint(true, true, false, "")
	case "f", "F":
		ip.paint(false, false, true, model.FillNonZero)
	case "f*":
		ip.paint(false, false, true, model.FillEvenOdd)
	case "B":
		ip.paint(false, true, true, model.FillNonZero)
	case "B*":
		ip.paint(false, true, true, model.FillEvenOdd)
	case "b":
		ip.paint(true, true, true, model.FillNonZero)
	case "b*":
		ip.paint(true, true, true, model.FillEvenOdd)
	case "n":
		ip.path.Clear()

	// Color
	case "g":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().FillColor = model.Gray(v)
		}
	case "G":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().StrokeColor = model.Gray(v)
		}
	case "rg":
		if len(ops) >= 3 {
			ip.state().FillColor = model.RGB(floatAt(ops, 0), floatAt(ops, 1), floatAt(ops, 2))
		}
	case "RG":
		if len(ops) >= 3 {
			ip.state().StrokeColor = model.RGB(floatAt(ops, 0), floatAt(ops, 1), floatAt(ops, 2))
		}
	case "k":
		if len(ops) >= 4 {
			ip.state().FillColor = model.CMYK(floatAt(ops, 0), floatAt(ops, 1), floatAt(ops, 2), floatAt(ops, 3))
		}
	case "K":
		if len(ops) >= 4 {
			ip.state().StrokeColor = model.CMYK(floatAt(ops, 0), floatAt(ops, 1), floatAt(ops, 2), floatAt(ops, 3))
		}

	// Text state
	case "Tc":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().CharSpacing = v
		}
	case "Tw":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().WordSpacing = v
		}
	case "Tz":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().HorizontalScaling = v
		}
	case "TL":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().Leading = v
		}
	case "Ts":
		if v, ok := floatOpt(ops, 0); ok {
			ip.state().TextRise = v
		}
	case "Tf":
		if len(ops) >= 2 {
			if name, ok := ops[0].(core.Name); ok {
				ip.state().SetFont(string(name), floatAt(ops, 1))
			}
		}

	// Text positioning
	case "BT":
		ip.state().BeginText()
	case "ET":
		// Nothing to unwind; BT resets the text matrices.
	case "Tm":
		if len(ops) >= 6 {
			ip.state().SetTextMatrix(operandsToMatrix(ops))
		}
	case "Td":
		if x, y, ok := floatPair(ops); ok {
			ip.state().TranslateText(x, y)
		}
	case "TD":
		if x, y, ok := floatPair(ops); ok {
			ip.state().TranslateTextSetLeading(x, y)
		}
	case "T*":
		ip.state().NextLine()

	// Text showing
	case "Tj":
		if text, ok := decodeTextOperand(operandAt(ops, 0)); ok {
			ip.emitText(text)
		}
	case "TJ":
		if arr, ok := operandAt(ops, 0).(core.Array); ok {
			ip.emitText(combineAdjustedText(arr))
		}
	case "'":
		ip.state().NextLine()
		if text, ok := decodeTextOperand(operandAt(ops, 0)); ok {
			ip.emitText(text)
		}
	case "\"":
		if len(ops) >= 3 {
			ip.state().WordSpacing = floatAt(ops, 0)
			ip.state().CharSpacing = floatAt(ops, 1)
			ip.state().NextLine()
			if text, ok := decodeTextOperand(ops[2]); ok {
				ip.emitText(text)
			}
		}

	// XObjects
	case "Do":
		if name, ok := operandAt(ops, 0).(core.Name); ok {
			ip.placeImage(string(name))
		}

	default:
		// Unrecognized operators (clipping, shading, marked content,
		// inline images, ...) are ignored.
	}
}

// paint finalizes the in-progress path. An empty buffer emits nothing.
func (ip *Interpreter) paint(close, stroke, fill bool, rule model.FillRule) {
	if ip.path.IsEmpty() {
		return
	}
	if close {
		ip.path.Close()
	}

	st := ip.state()
	var strokeColor, fillColor *model.RGBA
	if stroke {
		c := st.StrokeColor
		strokeColor = &c
	}
	if fill {
		c := st.FillColor
		fillColor = &c
	}

	p := transformPath(ip.path.Commands(), strokeColor, fillColor, st.LineWidth, st.CTM, ip.pageHeight)
	if fill {
		p.FillRule = rule
	}
	p.Seq = ip.nextSeq()

	ip.paths = append(ip.paths, p)
	ip.path.Clear()
}

// emitText records one positioned text run, skipping empty and
// whitespace-only strings.
func (ip *Interpreter) emitText(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	t := makeText(text, ip.state(), ip.pageHeight)
	t.Seq = ip.nextSeq()
	ip.texts = append(ip.texts, t)
}

// placeImage emits a placed image for a registered XObject resource.
// The image occupies the CTM-mapped unit square.
func (ip *Interpreter) placeImage(name string) {
	res, ok := ip.resources[name]
	if !ok {
		return
	}
	img := makeImage(name, res, ip.state().CTM, ip.pageHeight)
	img.Seq = ip.nextSeq()
	ip.images = append(ip.images, img)
}

// operandAt returns the i-th operand or nil.
func operandAt(ops []core.Object, i int) core.Object {
	if i < 0 || i >= len(ops) {
		return nil
	}
	return ops[i]
}

// floatAt coerces the i-th operand to float64, defaulting to 0 for
// missing or non-numeric operands.
func floatAt(ops []core.Object, i int) float64 {
	v, _ := core.Float(operandAt(ops, i))
	return v
}

// floatOpt coerces the i-th operand to float64, reporting whether it was
// actually numeric.
func floatOpt(ops []core.Object, i int) (float64, bool) {
	return core.Float(operandAt(ops, i))
}

// floatPair reads two leading numeric operands, as required by m, l, Td,
// and TD.
func floatPair(ops []core.Object) (x, y float64, ok bool) {
	x, xok := floatOpt(ops, 0)
	y, yok := floatOpt(ops, 1)
	return x, y, xok && yok
}

// operandsToMatrix builds a matrix from six numeric operands.
func operandsToMatrix(ops []core.Object) model.Matrix {
	return model.Matrix{
		A: floatAt(ops, 0), B: floatAt(ops, 1),
		C: floatAt(ops, 2), D: floatAt(ops, 3),
		E: floatAt(ops, 4), F: floatAt(ops, 5),
	}
}
