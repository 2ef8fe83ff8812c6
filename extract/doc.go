// Package extract interprets PDF content streams into positioned text
// runs, vector paths, and placed images.
//
// The [Interpreter] is a single-pass state machine over an ordered
// operator stream. State-setting operators mutate the graphics state
// stack; paint and text-showing operators emit output records with
// coordinates already transformed into output space (top-left origin,
// Y down):
//
//	ip := extract.NewInterpreter(pageHeight)
//	if err := ip.ProcessBytes(content); err != nil {
//	    // the stream could not be tokenized; fall back to a
//	    // lower-fidelity extraction path for this page
//	}
//	layers := ip.LayerObjects(pageIndex)
//
// # Failure semantics
//
// Interpretation itself never fails. Operators with missing or mistyped
// operands are skipped, unrecognized operators are ignored, unbalanced
// Q operators are tolerated, and undecodable text falls back to lossy
// UTF-8. The only error a caller sees is a whole-stream tokenization
// failure from ProcessBytes.
//
// # Fidelity
//
// Text widths are estimated from character count, effective font size,
// and a per-family width factor (see [EstimateTextWidth]); exact glyph
// metrics are out of scope. Path bounding boxes include Bézier control
// points, giving a loose rather than tight bound. Clipping, shading,
// patterns, and inline images are not interpreted.
package extract
