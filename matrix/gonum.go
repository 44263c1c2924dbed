// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both conversions copy: the returned value never shares storage with its
// source, so Dense keeps exclusive ownership of its buffer.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense holding a copy of m's cells.
// gonum cannot represent a 0×0 Dense, so an empty m yields ErrInvalidDimensions.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf("ToGonum", ErrNilMatrix)
	}
	if m.IsEmpty() {
		return nil, matrixErrorf("ToGonum", ErrInvalidDimensions)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrInvalidDimensions when a has a zero dimension.
//   - ErrNaNInf when the finite-only policy is enabled and a holds NaN/±Inf.
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	res, err := NewDenseFunc(r, c, a.At, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%dx%d): %w", opGonum, r, c, err)
	}

	return res, nil
}
