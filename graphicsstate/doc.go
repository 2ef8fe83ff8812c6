// Package graphicsstate implements the PDF graphics state stack and the
// path construction buffer used during content stream interpretation.
//
// # Graphics state
//
// [State] tracks the current transformation matrix, stroke and fill
// colors, line width, font selection, and the text positioning matrices.
// [Stack] provides the q/Q save and restore discipline:
//
//	st := graphicsstate.NewStack()
//	st.Save()                        // q
//	st.Top().Transform(m)            // cm
//	st.Top().SetFont("Helvetica", 12) // Tf
//	st.Restore()                     // Q
//
// The stack never drops below one entry; a Q with no matching q is a
// silent no-op, matching how viewers treat unbalanced operators.
//
// # Path construction
//
// [Builder] accumulates m, l, c, v, y, h, and re operators as commands
// in user space. Paint operators consume the buffer; the coordinate
// transformation into output space is the interpreter's job, applied
// exactly once per painted path.
package graphicsstate
