// Package model provides the shared data types for extracted page content.
//
// All extraction ultimately produces these types, making them the primary
// API for consuming results.
//
// # Geometry
//
// Geometric primitives support the positioning math of the interpreter:
//
//   - [Matrix] - 2D affine transformation matrix in the PDF convention
//   - [Point] - 2D point
//   - [BBox] - axis-aligned bounding box in output space
//
// Matrix composition follows the row-vector convention: M.Multiply(N)
// applies M first, then N. This matches the cm operator's accumulation
// CTM = CTM.Multiply(operand).
//
// # Coordinate spaces
//
// PDF user space has its origin at the bottom-left with Y increasing
// upward. All types in this package that describe extracted content
// ([BBox], [PathCommand] coordinates) are in output space: origin
// top-left, Y increasing downward, matching conventional screen and
// layout coordinates.
//
// # Layers
//
// [LayerObject] is the generic visual-element record produced by layer
// projection, serialized with camelCase JSON field names for the
// downstream consumer. Vector layers carry [PathData] with an explicit
// [FillRule]; text layers carry resolved font family, weight and style.
package model
