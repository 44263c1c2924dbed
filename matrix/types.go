// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface consumed by the arithmetic kernels.
// Kernels accept any Matrix and take a flat-slice fast path when the operand
// is a *Dense; every result they return is a freshly allocated *Dense.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Deep copies are a concern of the concrete type (see (*Dense).Clone), so the
// interface only carries shape and element access.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error
}
