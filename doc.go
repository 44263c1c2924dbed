// Package lvmatrix is a small, dependency-light dense matrix library for Go.
//
// Everything lives in the matrix subpackage:
//
//	matrix/ : the Dense value type (row-major float64 storage), construction,
//	          element access, copy/move lifecycle, arithmetic (Add, Sub,
//	          Negate, Scale, Mul, Hadamard, Transpose), in-place compound
//	          forms, exact Equal and tolerant AllClose, text output, and
//	          gonum interop.
//
// Guarantees:
//
//   - Value semantics: Clone and CopyFrom never share buffers; Move and
//     MoveFrom transfer them in O(1) and leave the source empty.
//   - Two error categories, matched with errors.Is: matrix.ErrInvalidArgument
//     and matrix.ErrOutOfRange.
//   - Failed in-place operations leave the receiver unchanged.
//
// Quick start:
//
//	go get github.com/katalvlaran/lvmatrix/matrix
//
// See examples/ for a runnable program.
package lvmatrix
