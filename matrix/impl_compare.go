// SPDX-License-Identifier: MIT

// Package matrix - equality.
//
// Equal is exact: same shape and every cell compares == (so NaN never equals
// anything, and 0 == -0). AllClose is the separately named tolerance check
// for numerical work; Equal's contract never changes.
package matrix

import "math"

// Equal reports whether a and b have the same shape and every pair of cells
// compares == (no tolerance). Two empty matrices are equal; nil equals only nil.
// Complexity: Time O(r*c) worst case, early exit on first difference.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil == bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for off := range da.data {
		if da.data[off] != db.data[off] {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Dense) Equal(b Matrix) bool { return Equal(m, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Tolerances come from WithEpsilon (atol) and WithRelTol (rtol).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - NaN cells never compare close; equal infinities do.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	da, db, err := asDensePair(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	var av, bv float64
	for off := range da.data {
		av, bv = da.data[off], db.data[off]
		if av == bv {
			continue // covers equal infinities
		}
		// Check |a-b| ≤ atol + rtol*|b|; NaN fails the comparison.
		if !(math.Abs(av-bv) <= o.eps+o.relTol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
