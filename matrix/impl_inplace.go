// SPDX-License-Identifier: MIT

// Package matrix - compound-assignment forms (+=, -=, *=, /=) on *Dense.
//
// Contract:
//   - All-or-nothing: operands are validated (and, under the finite-only
//     policy, every new value is checked) before the first write, so a failed
//     call leaves the receiver exactly as it was.
//   - Each method returns the receiver for chaining.
package matrix

import (
	"fmt"
	"math"
)

// Operation tags for the scalar forms.
const (
	opScaleIn = "ScaleInPlace"
	opDivIn   = "DivInPlace"
)

// apply rewrites every cell with f(off, v) in flat order.
// With the finite-only policy on, new values are staged and committed only
// when all of them are finite.
func (m *Dense) apply(tag string, f func(off int, v float64) float64) error {
	if !m.validateNaNInf {
		for off, v := range m.data {
			m.data[off] = f(off, v)
		}

		return nil
	}
	next := make([]float64, len(m.data))
	var nv float64
	for off, v := range m.data {
		nv = f(off, v)
		if math.IsNaN(nv) || math.IsInf(nv, 0) {
			return denseErrorf(tag, off/m.c, off%m.c, ErrNaNInf)
		}
		next[off] = nv
	}
	copy(m.data, next)

	return nil
}

// AddInPlace performs m += b cell-wise.
//
// Errors:
//   - ErrNilMatrix (nil receiver or operand), ErrDimensionMismatch (shape),
//     ErrNaNInf (finite-only policy). m is untouched on error.
//
// Complexity: Time O(r*c).
func (m *Dense) AddInPlace(b Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAddIn, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(m, b); err != nil {
		return m, matrixErrorf(opAddIn, err)
	}
	db, err := asDense(b)
	if err != nil {
		return m, matrixErrorf(opAddIn, err)
	}
	if err = m.apply(opAddIn, func(off int, v float64) float64 { return v + db.data[off] }); err != nil {
		return m, err
	}

	return m, nil
}

// SubInPlace performs m -= b as m += (-b), building -b like Sub does.
// Same errors as AddInPlace; an empty b yields ErrInvalidDimensions because
// its negation cannot be built. m is untouched on error.
func (m *Dense) SubInPlace(b Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opSubIn, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(m, b); err != nil {
		return m, matrixErrorf(opSubIn, err)
	}
	nb, err := Negate(b)
	if err != nil {
		return m, matrixErrorf(opSubIn, err)
	}
	if _, err = m.AddInPlace(nb); err != nil {
		return m, matrixErrorf(opSubIn, err)
	}

	return m, nil
}

// ScaleInPlace performs m *= alpha.
// Fails only under the finite-only policy (ErrNaNInf), leaving m untouched.
func (m *Dense) ScaleInPlace(alpha float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScaleIn, ErrNilMatrix)
	}
	if err := m.apply(opScaleIn, func(_ int, v float64) float64 { return v * alpha }); err != nil {
		return m, err
	}

	return m, nil
}

// DivInPlace performs m /= alpha as m *= (1/alpha).
// alpha is not checked for zero: IEEE division yields ±Inf or NaN cells.
func (m *Dense) DivInPlace(alpha float64) (*Dense, error) {
	if _, err := m.ScaleInPlace(1.0 / alpha); err != nil {
		return m, fmt.Errorf("%s(%g): %w", opDivIn, alpha, err)
	}

	return m, nil
}
