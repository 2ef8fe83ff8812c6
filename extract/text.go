package extract

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/stratapdf/strata/core"
	"github.com/stratapdf/strata/graphicsstate"
	"github.com/stratapdf/strata/model"
)

// ExtractedText is one positioned text run, produced per text-showing
// operator. Coordinates are in output space (top-left origin); FontSize
// is the effective, post-transform size.
type ExtractedText struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontName string
	FontSize float64
	Color    model.RGBA
	// Transform is the combined CTM · text matrix in effect at emission.
	Transform model.Matrix
	// Seq is the emission sequence number, shared with paths and images.
	Seq int
}

// wordGapThreshold is the TJ adjustment (thousandths of an em) below
// which a gap is read as a word break.
const wordGapThreshold = -100.0

// fallbackFontName stands in when no Tf operator has selected a font.
const fallbackFontName = "Helvetica"

// decodeTextOperand decodes a string operand to text. String bytes are
// tried as UTF-8 first, then as UTF-16BE when tagged with a byte-order
// mark, then lossily as UTF-8. Names decode as their text. Decoding
// never fails; ok=false only means the operand cannot carry text at all.
func decodeTextOperand(obj core.Object) (string, bool) {
	switch v := obj.(type) {
	case core.String:
		return decodeStringBytes([]byte(v)), true
	case core.Name:
		return string(v), true
	default:
		return "", false
	}
}

// decodeStringBytes decodes PDF string bytes on a best-effort basis.
func decodeStringBytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		if s, ok := decodeUTF16BE(b[2:]); ok {
			return s
		}
	}
	return strings.ToValidUTF8(string(b), "�")
}

// decodeUTF16BE decodes big-endian UTF-16 bytes (byte-order mark already
// stripped).
func decodeUTF16BE(b []byte) (string, bool) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// combineAdjustedText flattens a TJ array: string elements concatenate
// and numeric adjustments more negative than the word-gap threshold
// insert a single space. This approximates inter-glyph positioning, not
// exact kerning.
func combineAdjustedText(arr core.Array) string {
	var sb strings.Builder
	for _, item := range arr {
		switch v := item.(type) {
		case core.String:
			sb.WriteString(decodeStringBytes([]byte(v)))
		case core.Int:
			if float64(v) < wordGapThreshold {
				sb.WriteByte(' ')
			}
		case core.Real:
			if float64(v) < wordGapThreshold {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// EstimateTextWidth estimates the rendered width of text from the
// character count, the effective font size, and a per-family width
// factor. Exact advance widths would require parsing embedded font
// metrics, which this module does not do; the heuristic is isolated here
// so real metrics can replace it without touching the interpreter.
func EstimateTextWidth(text string, fontSize float64, fontName string) float64 {
	chars := float64(utf8.RuneCountInString(text))
	lower := strings.ToLower(fontName)

	factor := 0.52 // Arial/Helvetica-like default
	switch {
	case strings.Contains(lower, "courier") || strings.Contains(lower, "mono"):
		factor = 0.6
	case strings.Contains(lower, "times"):
		factor = 0.45
	}

	return chars * fontSize * factor
}

// makeText builds a positioned text run from the current graphics state.
func makeText(text string, st *graphicsstate.State, pageHeight float64) ExtractedText {
	combined := st.CTM.Multiply(st.TextMatrix)

	// The run's origin is the translation of the combined matrix, with
	// text rise lifting the baseline.
	pdfX := combined.E
	pdfY := combined.F + st.TextRise

	scale := math.Abs(combined.ScaleY())
	if scale < 0.1 {
		scale = 0.1
	}
	fontSize := st.FontSize * scale

	fontName := st.FontName
	if fontName == "" {
		fontName = fallbackFontName
	}

	width := EstimateTextWidth(text, fontSize, fontName) * st.HorizontalScaling / 100.0
	height := fontSize * 1.15

	// pdfY is the baseline in PDF coordinates. The baseline sits about
	// 80% down from the top of the text box, so the box top in PDF
	// coordinates is pdfY + ascent, which flips to
	// pageHeight - pdfY - ascent in output space.
	ascent := fontSize * 0.8
	screenY := pageHeight - pdfY - ascent

	return ExtractedText{
		Text:      text,
		X:         pdfX,
		Y:         screenY,
		Width:     math.Max(width, 1.0),
		Height:    math.Max(height, 1.0),
		FontName:  fontName,
		FontSize:  fontSize,
		Color:     st.FillColor,
		Transform: combined,
	}
}
