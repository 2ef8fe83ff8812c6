// Package core defines the PDF object kinds that appear as content-stream
// operands: numbers, strings, names, arrays, dictionaries, booleans, and
// null.
//
// Object resolution against the document body (indirect references, xref
// tables, object streams) is deliberately absent: this module consumes
// already-decoded per-page content and leaves document-level parsing to
// the surrounding PDF object model.
package core
