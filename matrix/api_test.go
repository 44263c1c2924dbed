// Package matrix_test contains unit tests for the facade constructors,
// aliases and method forms.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	I := IdentityDense(t, 3)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestZerosAndIdentityLike(t *testing.T) {
	a := RandFilledDense(t, 3, 2, 7)
	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(z, MustDense(t, 3, 2)))

	zz, err := matrix.NewZeros(3, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(z, zz))

	_, err = matrix.IdentityLike(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	I, err := matrix.IdentityLike(MustDense(t, 4, 4))
	require.NoError(t, err)
	require.True(t, matrix.Equal(I, IdentityDense(t, 4)))

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.EqualError(t, err, "ZerosLike: ValidateNotNil: matrix: invalid argument: nil matrix")
	_, err = matrix.ZerosLike(matrix.NewEmpty())
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.EqualError(t, err, "ZerosLike: NewDense(0,0): matrix: invalid argument: dimensions must be > 0")
}

// TestAliasesMatchKernels checks that facades delegate 1:1.
func TestAliasesMatchKernels(t *testing.T) {
	a := RandFilledDense(t, 3, 3, 31)
	b := RandFilledDense(t, 3, 3, 32)

	same := func(x, y *matrix.Dense, errX, errY error) {
		t.Helper()
		require.NoError(t, errX)
		require.NoError(t, errY)
		assert.True(t, matrix.Equal(x, y))
	}

	x, ex := matrix.Sum(a, b)
	y, ey := matrix.Add(a, b)
	same(x, y, ex, ey)
	x, ex = matrix.Diff(a, b)
	y, ey = matrix.Sub(a, b)
	same(x, y, ex, ey)
	x, ex = matrix.Product(a, b)
	y, ey = matrix.Mul(a, b)
	same(x, y, ex, ey)
	x, ex = matrix.HadamardProd(a, b)
	y, ey = matrix.Hadamard(a, b)
	same(x, y, ex, ey)
	x, ex = matrix.T(a)
	y, ey = matrix.Transpose(a)
	same(x, y, ex, ey)
	x, ex = matrix.ScaleBy(a, 2.5)
	y, ey = matrix.Scale(a, 2.5)
	same(x, y, ex, ey)
}

// TestMethodForms checks the *Dense method wrappers.
func TestMethodForms(t *testing.T) {
	a, b := scenarioAB(t)

	sum, err := a.Add(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-4, -4}, {-4, -4}}, diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, prod)

	sc, err := a.Scale(2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, sc)

	neg, err := a.Negate()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -2}, {-3, -4}}, neg)

	had, err := a.MulElem(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 12}, {21, 32}}, had)

	tr, err := a.T()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {2, 4}}, tr)

	_, err = a.MulElem(MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}
