// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose the unexported generator and materialization helper to matrix_test ONLY.
//   - Lives in a _test.go file, so nothing here widens the production API.

// Generate_TestOnly is a pass-through to generate.
func Generate_TestOnly(rows, cols int, f func(i, j int) float64) (*Dense, error) {
	return generate(rows, cols, f)
}

// AsDense_TestOnly is a pass-through to asDense.
func AsDense_TestOnly(m Matrix) (*Dense, error) {
	return asDense(m)
}

// BufferLen_TestOnly reports len(m.data) and whether the buffer is nil.
func BufferLen_TestOnly(m *Dense) (n int, isNil bool) {
	return len(m.data), m.data == nil
}
