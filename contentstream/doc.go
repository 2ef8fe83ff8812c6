// Package contentstream tokenizes PDF page content streams.
//
// A content stream is the per-page sequence of drawing operators and
// operands defining visible marks. The parser produces an ordered
// []Operation, each pairing an operator with the operands that preceded
// it:
//
//	parser := contentstream.NewParser(streamData)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Printf("%s %v\n", op.Operator, op.Operands)
//	}
//
// Operands are core package objects: numbers (core.Int, core.Real),
// strings (core.String), names (core.Name), arrays (core.Array), and,
// rarely, dictionaries (core.Dict).
//
// Tokenization is all-or-nothing: a stream that cannot be tokenized
// returns a single error for the whole page. Semantic problems (wrong
// operand counts or types for a given operator) are not detected here;
// the interpreter degrades per-operator instead.
package contentstream
