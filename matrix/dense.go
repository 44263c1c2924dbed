// SPDX-License-Identifier: MIT

// Package matrix - Dense lifecycle: copy, move, reset.
//
// Value semantics:
//
//	Clone   : copy construction: independent deep copy.
//	CopyFrom: copy assignment: drop own buffer, deep-copy the source.
//	Move    : move construction: new Dense takes the buffer, receiver becomes empty.
//	MoveFrom: move assignment: drop own buffer, take the source's, source becomes empty.
//	Reset   : release: drop the buffer; a no-op on an already empty matrix.
//
// Dimensions and buffer are always replaced as a unit. Moves are O(1).
package matrix

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of either matrix never affect the other.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, validateNaNInf: m.validateNaNInf}
	if m.data != nil {
		out.data = make([]float64, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// CopyFrom makes m an independent deep copy of src (shape, cells and policy).
// Copying from itself is a no-op. Returns m for chaining.
//
// Errors:
//   - ErrNilMatrix when src is nil; m is left untouched.
func (m *Dense) CopyFrom(src *Dense) (*Dense, error) {
	if src == nil {
		return m, matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return m, nil
	}
	cp := src.Clone()
	m.r, m.c, m.data, m.validateNaNInf = cp.r, cp.c, cp.data, cp.validateNaNInf

	return m, nil
}

// Move transfers m's buffer, shape and policy into a new Dense and leaves m
// empty (0×0, no buffer). Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data, validateNaNInf: m.validateNaNInf}
	m.Reset()

	return out
}

// MoveFrom drops m's buffer and takes src's buffer, shape and policy; src is
// left empty. Moving from itself is a no-op. Complexity: O(1).
//
// Errors:
//   - ErrNilMatrix when src is nil; m is left untouched.
func (m *Dense) MoveFrom(src *Dense) (*Dense, error) {
	if src == nil {
		return m, matrixErrorf(opMoveFrom, ErrNilMatrix)
	}
	if m == src {
		return m, nil
	}
	m.r, m.c, m.data, m.validateNaNInf = src.r, src.c, src.data, src.validateNaNInf
	src.Reset()

	return m, nil
}

// Reset releases the buffer and makes m the empty 0×0 matrix.
// Safe to call any number of times. The numeric policy is kept.
func (m *Dense) Reset() {
	m.r, m.c, m.data = 0, 0, nil
}
