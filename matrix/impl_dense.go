// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Update return errors instead of panicking.
//   - Keep algorithmic determinism (fixed row-major loop orders).
//   - Build derived matrices through one generator (cell(i,j) = f(i,j)).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); String/WriteTo: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// ---------- error context tags ----------

// Method tags used in error wrappers.
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxUpdate  = "Update"
	ctxNew     = "NewDenseFunc"
	ctxRows    = "NewDenseFromRows"
	ctxWriteTo = "WriteTo"
)

// ---------- Formatting literals ----------

const (
	_fmtCellSep = ' '  // written after every cell, including the last one
	_fmtRowEnd  = '\n' // terminates every row
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection (see WithValidateNaNInf).
//
// The zero value is the empty matrix: 0×0 with no buffer. Any element access on
// it fails with ErrOutOfRange.
//
// The finite-only policy belongs to the instance. Clone, CopyFrom, Move and
// MoveFrom carry it; results of the arithmetic kernels (Add, Mul, Scale, ...)
// are fresh matrices with the default policy, whatever their operands use.
// Pass WithValidateNaNInf to a constructor or CopyFrom a strict matrix to
// opt a result back in.
//
// A Dense owns its buffer exclusively; Clone, CopyFrom, Move and MoveFrom keep
// that true. Concurrent reads of one instance are safe; concurrent mutation of
// the same instance (Set, Update, *InPlace, CopyFrom, MoveFrom, Reset) must be
// serialized by the caller.
type Dense struct {
	r, c           int       // row and column counts (0×0 only for the empty matrix)
	data           []float64 // contiguous row-major storage (len == r*c; nil when empty)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
	_ io.WriterTo  = (*Dense)(nil)
)

// NewEmpty returns the empty 0×0 matrix (same as &Dense{}).
func NewEmpty() *Dense { return &Dense{} }

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer; apply numeric policy from opts.
//
// Behavior highlights:
//   - No panics on user errors; nothing is allocated on failure.
//   - A single allocation means no partially built matrix can exist.
//
// Errors:
//   - ErrInvalidDimensions (category ErrInvalidArgument).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFunc creates an r×c matrix whose cell (i,j) is fill(i,j).
// fill is called exactly once per cell, in row-major order.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrNilFunc when fill is nil.
//   - ErrNaNInf when the finite-only policy is enabled and fill yields NaN/±Inf.
//
// Complexity:
//   - Time O(r*c) calls of fill, Space O(r*c).
func NewDenseFunc(rows, cols int, fill func(i, j int) float64, opts ...Option) (*Dense, error) {
	if fill == nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, ErrNilFunc)
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	m.fill(fill)
	if m.validateNaNInf {
		if i, j, ok := m.firstNonFinite(); ok {
			return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
		}
	}

	return m, nil
}

// NewDenseFromRows builds a matrix from literal rows (row-major copy).
// The input is not retained.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the rows are empty.
//   - ErrRaggedRows when row lengths differ.
//   - ErrNaNInf when the finite-only policy is enabled and a value is non-finite.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), cols, ErrRaggedRows)
		}
	}

	return NewDenseFunc(len(rows), cols, func(i, j int) float64 { return rows[i][j] }, opts...)
}

// generate is the internal builder behind every derived matrix
// (sum, scaled copy, transpose, element-wise product): shape (rows, cols)
// with cell(i,j) = f(i,j). It follows the public constructor's validity rule,
// so an empty shape yields ErrInvalidDimensions.
func generate(rows, cols int, f func(i, j int) float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.fill(f)

	return m, nil
}

// fill writes f(i,j) into every cell, row-major.
func (m *Dense) fill(f func(i, j int) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j)
		}
	}
}

// firstNonFinite returns the first NaN/±Inf cell in row-major order.
func (m *Dense) firstNonFinite() (row, col int, found bool) {
	for off, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return off / m.c, off % m.c, true
		}
	}

	return 0, 0, false
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m owns no buffer (zero value, moved-from or Reset).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// ValidatesNaNInf reports whether the finite-only policy is enabled on m.
func (m *Dense) ValidatesNaNInf() bool { return m.validateNaNInf }

// indexOf bounds-checks (row,col) and computes the flat offset.
// Returns the bare ErrOutOfRange sentinel; public methods add context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the empty matrix rejects every index.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrNaNInf for non-finite v when the finite-only policy is enabled.
//
// Nothing is written on error.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Update replaces the value at (row, col) with f(old).
// Same errors as Set; f is not called when the index is invalid.
func (m *Dense) Update(row, col int, f func(v float64) float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxUpdate, row, col, err)
	}
	if f == nil {
		return denseErrorf(ctxUpdate, row, col, ErrNilFunc)
	}
	nv := f(m.data[off])
	if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
		return denseErrorf(ctxUpdate, row, col, ErrNaNInf)
	}
	m.data[off] = nv

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// appendRow appends the text form of row i: every cell followed by a space,
// then a newline.
func (m *Dense) appendRow(dst []byte, i int) []byte {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		dst = strconv.AppendFloat(dst, m.data[base+j], 'g', -1, 64)
		dst = append(dst, _fmtCellSep)
	}

	return append(dst, _fmtRowEnd)
}

// String renders the matrix as Rows() lines of space-separated cells.
// Every cell, including the last one of a row, is followed by a single space;
// every row ends with '\n'. The empty matrix renders as "".
//
// Example (2×2):
//
//	"1 2 \n3 4 \n"
func (m *Dense) String() string {
	buf := make([]byte, 0, m.r*(m.c*4+1))
	for i := 0; i < m.r; i++ {
		buf = m.appendRow(buf, i)
	}

	return string(buf)
}

// WriteTo streams the same text as String to w, one row per Write call.
// It returns the number of bytes written and the first write error, wrapped
// with the failing row.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var line []byte
	for i := 0; i < m.r; i++ {
		line = m.appendRow(line[:0], i)
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("Dense.%s: row %d: %w", ctxWriteTo, i, err)
		}
	}

	return total, nil
}
