package contentstream

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/stratapdf/strata/core"
)

// Operation is a single content-stream operation: an operator together
// with the operands that preceded it.
type Operation struct {
	Operator string        // e.g. "Tj", "cm", "q"
	Operands []core.Object // operands in stream order
}

// Parser tokenizes a page content stream into an ordered operation list.
// Parsing is the only fallible step of extraction: a stream that cannot
// be tokenized fails as a whole, and the caller falls back to a
// lower-fidelity extraction path.
type Parser struct {
	data     []byte
	pos      int
	ops      []Operation
	operands []core.Object
}

// NewParser creates a parser over raw content-stream bytes.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse tokenizes the whole stream and returns the operations in order.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipIgnorable()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// next consumes one token: an operand is pushed onto the pending stack,
// an operator consumes the stack into an Operation.
func (p *Parser) next() error {
	if isRegular(p.data[p.pos]) {
		return p.readBareToken()
	}

	operand, err := p.readOperand()
	if err != nil {
		return err
	}
	p.operands = append(p.operands, operand)
	return nil
}

// readBareToken reads an unquoted token and classifies it as a keyword
// operand (true, false, null) or an operator.
func (p *Parser) readBareToken() error {
	start := p.pos
	for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
		p.pos++
	}
	token := string(p.data[start:p.pos])
	if token == "" {
		return fmt.Errorf("empty token at position %d", start)
	}

	switch token {
	case "true":
		p.operands = append(p.operands, core.Bool(true))
	case "false":
		p.operands = append(p.operands, core.Bool(false))
	case "null":
		p.operands = append(p.operands, core.Null{})
	default:
		op := Operation{Operator: token, Operands: p.operands}
		p.operands = nil
		p.ops = append(p.ops, op)
	}
	return nil
}

// readOperand reads a number, string, hex string, name, array, or
// dictionary starting at the current position.
func (p *Parser) readOperand() (core.Object, error) {
	p.skipIgnorable()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	switch c := p.data[p.pos]; {
	case isNumberStart(c):
		return p.readNumber()
	case c == '(':
		return p.readLiteralString()
	case c == '/':
		return p.readName()
	case c == '[':
		return p.readArray()
	case c == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			return p.readDict()
		}
		return p.readHexString()
	case isRegular(c):
		// Bare keyword inside an array or dictionary.
		start := p.pos
		for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
			p.pos++
		}
		switch token := string(p.data[start:p.pos]); token {
		case "true":
			return core.Bool(true), nil
		case "false":
			return core.Bool(false), nil
		case "null":
			return core.Null{}, nil
		default:
			return nil, fmt.Errorf("unexpected token %q at position %d", token, start)
		}
	default:
		return nil, fmt.Errorf("unexpected character %q at position %d", c, p.pos)
	}
}

// readNumber reads an integer or real number.
func (p *Parser) readNumber() (core.Object, error) {
	start := p.pos
	if c := p.data[p.pos]; c == '+' || c == '-' {
		p.pos++
	}

	hasDigits := false
	hasDecimal := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			hasDigits = true
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	text := string(p.data[start:p.pos])
	if !hasDigits {
		return nil, fmt.Errorf("malformed number %q at position %d", text, start)
	}

	if hasDecimal {
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", text, err)
		}
		return core.Real(val), nil
	}

	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", text, err)
	}
	return core.Int(val), nil
}

// readLiteralString reads a (...) string, handling escape sequences,
// octal escapes, line continuations, and balanced nested parentheses.
func (p *Parser) readLiteralString() (core.Object, error) {
	p.pos++ // consume '('

	var out bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			p.readEscape(&out)
		case c == '(':
			depth++
			out.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				out.WriteByte(c)
			}
			p.pos++
		default:
			out.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unterminated string")
	}
	return core.String(out.String()), nil
}

// readEscape handles the character after a backslash in a literal string.
func (p *Parser) readEscape(out *bytes.Buffer) {
	c := p.data[p.pos]
	switch c {
	case 'n':
		out.WriteByte('\n')
		p.pos++
	case 'r':
		out.WriteByte('\r')
		p.pos++
	case 't':
		out.WriteByte('\t')
		p.pos++
	case 'b':
		out.WriteByte('\b')
		p.pos++
	case 'f':
		out.WriteByte('\f')
		p.pos++
	case '(', ')', '\\':
		out.WriteByte(c)
		p.pos++
	case '\r':
		// Line continuation: swallow CR and an optional LF.
		p.pos++
		if p.pos < len(p.data) && p.data[p.pos] == '\n' {
			p.pos++
		}
	case '\n':
		p.pos++
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// Octal escape, one to three digits, value mod 256.
		val := int(c - '0')
		p.pos++
		for i := 0; i < 2 && p.pos < len(p.data); i++ {
			d := p.data[p.pos]
			if d < '0' || d > '7' {
				break
			}
			val = val*8 + int(d-'0')
			p.pos++
		}
		out.WriteByte(byte(val & 0xFF))
	default:
		// Unknown escape: the backslash is dropped.
		out.WriteByte(c)
		p.pos++
	}
}

// readHexString reads a <...> hex string. Whitespace between digits is
// allowed; an odd final digit is padded with zero.
func (p *Parser) readHexString() (core.Object, error) {
	p.pos++ // consume '<'

	var out bytes.Buffer
	var hi byte
	havePending := false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '>' {
			p.pos++
			if havePending {
				out.WriteByte(hi << 4)
			}
			return core.String(out.String()), nil
		}
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q at position %d", c, p.pos)
		}
		if havePending {
			out.WriteByte(hi<<4 | hexValue(c))
			havePending = false
		} else {
			hi = hexValue(c)
			havePending = true
		}
		p.pos++
	}
	return nil, fmt.Errorf("unterminated hex string")
}

// readName reads a /Name with #xx escape handling.
func (p *Parser) readName() (core.Object, error) {
	p.pos++ // consume '/'

	var out bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) &&
			isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			out.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		out.WriteByte(c)
		p.pos++
	}
	return core.Name(out.String()), nil
}

// readArray reads a [...] array of operands.
func (p *Parser) readArray() (core.Object, error) {
	p.pos++ // consume '['

	var arr core.Array
	for {
		p.skipIgnorable()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unterminated array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		obj, err := p.readOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// readDict reads a <<...>> dictionary.
func (p *Parser) readDict() (core.Object, error) {
	p.pos += 2 // consume '<<'

	dict := make(core.Dict)
	for {
		p.skipIgnorable()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unterminated dictionary")
		}
		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name at position %d", p.pos)
		}
		key, err := p.readName()
		if err != nil {
			return nil, err
		}
		value, err := p.readOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key.(core.Name))] = value
	}
}

// skipIgnorable advances past whitespace and % comments. Comments run to
// end of line and may appear between any two tokens.
func (p *Parser) skipIgnorable() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isWhitespace(c):
			p.pos++
		case c == '%':
			for p.pos < len(p.data) && p.data[p.pos] != '\r' && p.data[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// isRegular reports whether c can be part of a bare token (operator or
// keyword). Operators include letters plus ' " and * (T*, f*, ', ").
func isRegular(c byte) bool {
	if isWhitespace(c) || isDelimiter(c) {
		return false
	}
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		c == '\'' || c == '"' || c == '*'
}

// isNumberStart reports whether c can begin a numeric operand.
func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
