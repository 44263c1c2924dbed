// Package matrix implements Dense, a dense row-major matrix of float64 values
// with value semantics, and the arithmetic that goes with it.
//
// The matrix package provides:
//
//   - Dense: an exclusively owned flat buffer indexed by i*cols + j, with
//     bounds-checked At/Set/Update that return ErrOutOfRange instead of panicking.
//   - Lifecycle: Clone (copy), CopyFrom (copy-assign), Move/MoveFrom (O(1)
//     ownership transfer that leaves the source empty) and Reset.
//   - Pure kernels returning a fresh *Dense: Add, Sub, Negate, Scale, Mul,
//     Hadamard, Transpose (also as methods on *Dense).
//   - Compound assignment: AddInPlace, SubInPlace, ScaleInPlace, DivInPlace,
//     all-or-nothing on error.
//   - Exact Equal and the separately named, tolerance-based AllClose.
//   - Text output via String and WriteTo: one line per row, every cell
//     followed by a single space.
//   - Interop with gonum.org/v1/gonum/mat (ToGonum, FromGonum).
//
// Errors fall into two categories, matched with errors.Is: ErrInvalidArgument
// (bad shape, shape mismatch, nil operand) and ErrOutOfRange (bad index).
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b)
//	fmt.Print(p) // "19 22 \n43 50 \n"
//
// Dense is not safe for concurrent mutation; concurrent reads are fine.
package matrix
