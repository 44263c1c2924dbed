// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid logic duplication; each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - Prefer passing *Dense to skip the At-based materialization of generic operands.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
//
// AI-Hints: Use as the neutral element of Mul: A × I = A.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	return NewDenseFunc(n, n, func(i, j int) float64 {
		if i == j {
			return 1.0
		}

		return 0.0
	}, opts...)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// An empty m yields ErrInvalidDimensions.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}
	z, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return z, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// ---------- Method forms on *Dense ----------

// Add returns m + b. See the package-level Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m - b. See the package-level Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Mul returns the matrix product m × b.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Scale returns alpha*m.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Negate returns -m.
func (m *Dense) Negate() (*Dense, error) { return Negate(m) }

// MulElem returns the Hadamard (element-wise) product m ⊙ b.
func (m *Dense) MulElem(b Matrix) (*Dense, error) { return Hadamard(m, b) }

// T returns mᵀ.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }
