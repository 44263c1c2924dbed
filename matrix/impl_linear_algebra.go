// SPDX-License-Identifier: MIT
// Package matrix provides the pure arithmetic kernels on any Matrix
// implementation: element-wise addition and subtraction, negation, scalar
// scaling, matrix multiplication, the Hadamard product and transpose.
// All functions validate fail-fast and return a freshly allocated *Dense;
// operands are never mutated.
//
// Purpose:
//   - Canonical kernels used by the facades (api.go) and in-place forms (impl_inplace.go).
//   - Every result is built by generate (cell(i,j) = f(i,j)), so loop bodies
//     are not duplicated across kernels.
//
// Notes:
//   - *Dense operands are read directly from their flat buffers; any other
//     Matrix is first materialized once via At (see asDense).
//   - An empty operand (0×0) passes shape validation against another empty
//     operand, but the result shape is empty and generate rejects it with
//     ErrInvalidDimensions.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNegate    = "Negate"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opAddIn     = "AddInPlace"
	opSubIn     = "SubInPlace"
	opCopyFrom  = "CopyFrom"
	opMoveFrom  = "MoveFrom"
	opAllClose  = "AllClose"
	opIdentity  = "IdentityLike"
	opZerosLike = "ZerosLike"
	opGonum     = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a row-major copy
// read through At. The caller must have validated m as non-nil.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := &Dense{r: rows, c: cols}
	if rows <= 0 || cols <= 0 {
		out.r, out.c = 0, 0

		return out, nil
	}
	out.data = make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// asDensePair validates a and b as same-shaped non-nil operands and returns
// their dense forms.
func asDensePair(a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, nil, err
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch),
//     ErrInvalidDimensions (empty operands).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	da, db, err := asDensePair(a, b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	c := da.c
	res, err := generate(da.r, c, func(i, j int) float64 {
		return da.data[i*c+j] + db.data[i*c+j]
	})
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B as A + (-B).
// Same errors as Add; shapes are checked before B is negated.
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	nb, err := Negate(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := Add(a, nb)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Negate returns -A, computed as A scaled by -1.
func Negate(m Matrix) (*Dense, error) {
	res, err := Scale(m, -1.0)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Scalar multiplication commutes, so this covers both A*s and s*A.
// alpha = 0 yields an explicit zero matrix with the same shape; NaN/Inf propagate.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	c := dm.c
	res, err := generate(dm.r, c, func(i, j int) float64 {
		return dm.data[i*c+j] * alpha
	})
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: each output cell accumulates Σ_k A[i,k]*B[k,j] from ZeroSum
//     with k ascending (natural i→j→k order; no zero skipping, so 0*Inf
//     still yields NaN as IEEE arithmetic demands).
//
// Returns:
//   - *Dense C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch), ErrInvalidDimensions (empty result).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// da.data layout: i*n + k; db.data layout: k*bCols + j
	n, bCols := da.c, db.c
	res, err := generate(da.r, bCols, func(i, j int) float64 {
		sum := ZeroSum
		rowA := i * n
		for k := 0; k < n; k++ {
			sum += da.data[rowA+k] * db.data[k*bCols+j]
		}

		return sum
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (empty operands).
func Hadamard(a, b Matrix) (*Dense, error) {
	da, db, err := asDensePair(a, b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	c := da.c
	res, err := generate(da.r, c, func(i, j int) float64 {
		return da.data[i*c+j] * db.data[i*c+j]
	})
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// shape (Cols × Rows), cell (i,j) = m(j,i).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	c := dm.c
	res, err := generate(c, dm.r, func(i, j int) float64 {
		return dm.data[j*c+i]
	})
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return res, nil
}
