package graphicsstate

import "github.com/stratapdf/strata/model"

// State is one snapshot of the PDF graphics state: the current
// transformation matrix, colors, line width, font selection, and text
// positioning state. States are plain values; the Stack clones the top
// entry on save.
type State struct {
	// CTM is the current transformation matrix accumulated by cm.
	CTM model.Matrix

	FillColor   model.RGBA
	StrokeColor model.RGBA
	LineWidth   float64

	// FontName is empty until a Tf operator selects a font.
	FontName string
	FontSize float64

	// TextMatrix advances within the current line; LineMatrix anchors
	// the start of the line. Both reset to identity at BT.
	TextMatrix model.Matrix
	LineMatrix model.Matrix

	CharSpacing       float64
	WordSpacing       float64
	HorizontalScaling float64 // percent, 100 = none
	TextRise          float64
	Leading           float64
}

// NewState returns a graphics state with PDF default values.
func NewState() State {
	return State{
		CTM:               model.Identity(),
		FillColor:         model.Black,
		StrokeColor:       model.Black,
		LineWidth:         1.0,
		FontSize:          12.0,
		TextMatrix:        model.Identity(),
		LineMatrix:        model.Identity(),
		HorizontalScaling: 100.0,
	}
}

// Transform composes a matrix onto the CTM (cm operator).
func (s *State) Transform(m model.Matrix) {
	s.CTM = s.CTM.Multiply(m)
}

// SetFont sets the current font name and nominal size (Tf operator).
func (s *State) SetFont(name string, size float64) {
	s.FontName = name
	s.FontSize = size
}

// BeginText resets the text and line matrices to identity (BT operator).
func (s *State) BeginText() {
	s.TextMatrix = model.Identity()
	s.LineMatrix = model.Identity()
}

// SetTextMatrix sets the text matrix and line matrix directly, without
// composition (Tm operator).
func (s *State) SetTextMatrix(m model.Matrix) {
	s.TextMatrix = m
	s.LineMatrix = m
}

// TranslateText moves to the start of the next line, offset from the
// current line origin (Td operator): the line matrix is composed with a
// translation and the text matrix snaps to it.
func (s *State) TranslateText(tx, ty float64) {
	s.LineMatrix = s.LineMatrix.Multiply(model.Translate(tx, ty))
	s.TextMatrix = s.LineMatrix
}

// TranslateTextSetLeading is Td plus setting leading to -ty (TD operator).
func (s *State) TranslateTextSetLeading(tx, ty float64) {
	s.Leading = -ty
	s.TranslateText(tx, ty)
}

// NextLine moves to the next line using the current leading (T* operator).
func (s *State) NextLine() {
	s.TranslateText(0, -s.Leading)
}

// Stack is the graphics state stack driven by the q and Q operators.
// The stack is never empty: it is created with one default state, and
// Restore on a single-entry stack is a silent no-op, matching PDF's
// graceful handling of unbalanced Q operators.
type Stack struct {
	states []State
}

// NewStack creates a stack holding one default state.
func NewStack() *Stack {
	return &Stack{states: []State{NewState()}}
}

// Save pushes a copy of the current state (q operator).
func (st *Stack) Save() {
	st.states = append(st.states, *st.Top())
}

// Restore pops the current state (Q operator). With only the initial
// entry left, Restore does nothing.
func (st *Stack) Restore() {
	if len(st.states) > 1 {
		st.states = st.states[:len(st.states)-1]
	}
}

// Top returns the current state. The pointer stays valid until the next
// Save or Restore.
func (st *Stack) Top() *State {
	return &st.states[len(st.states)-1]
}

// Depth returns the current stack depth. Always at least 1.
func (st *Stack) Depth() int {
	return len(st.states)
}
