// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every kernel returns one of these (possibly wrapped with call-site
// context) and tests check them via errors.Is. No function panics on
// user-triggered error conditions; option constructors panic on nonsensical
// arguments (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON CATEGORIES
// ------------------
// There are exactly two failure categories:
//
//	ErrInvalidArgument : bad shape at construction, shape mismatch between
//	                     operands, nil operands, rejected values under policy.
//	ErrOutOfRange      : element access with an out-of-bounds row or column.
//
// The specific sentinels below all wrap ErrInvalidArgument, so callers can
// match either the precise cause or the category:
//
//	errors.Is(err, ErrDimensionMismatch) // precise
//	errors.Is(err, ErrInvalidArgument)   // category
//
// Every message is prefixed with "matrix: ..." for easy grepping.

var (
	// ErrInvalidArgument is the category of every argument-related failure.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Update) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrNilFunc indicates that a nil generator was passed to NewDenseFunc.
	ErrNilFunc = fmt.Errorf("%w: nil generator", ErrInvalidArgument)

	// ErrRaggedRows indicates that literal rows passed to NewDenseFromRows
	// have different lengths.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value was rejected by the opt-in
	// finite-only policy (see WithValidateNaNInf).
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)
)
