// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkB bool
)

// benchBinary runs op over every n in benchSizes with two random n×n operands.
func benchBinary(b *testing.B, op func(x, y *matrix.Dense) (*matrix.Dense, error)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := op(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	benchBinary(b, func(x, y *matrix.Dense) (*matrix.Dense, error) { return matrix.Sum(x, y) })
}

func BenchmarkSub(b *testing.B) {
	benchBinary(b, func(x, y *matrix.Dense) (*matrix.Dense, error) { return matrix.Diff(x, y) })
}

func BenchmarkHadamard(b *testing.B) {
	benchBinary(b, func(x, y *matrix.Dense) (*matrix.Dense, error) { return matrix.HadamardProd(x, y) })
}

func BenchmarkMul(b *testing.B) {
	benchBinary(b, func(x, y *matrix.Dense) (*matrix.Dense, error) { return matrix.Product(x, y) })
}

func BenchmarkTranspose(b *testing.B) {
	benchBinary(b, func(x, _ *matrix.Dense) (*matrix.Dense, error) { return matrix.T(x) })
}

func BenchmarkScale(b *testing.B) {
	benchBinary(b, func(x, _ *matrix.Dense) (*matrix.Dense, error) { return matrix.ScaleBy(x, 1.0001) })
}

// BenchmarkAddInPlace measures the allocation-free compound form.
func BenchmarkAddInPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 7)
			fillDenseRand(b, B, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := A.AddInPlace(B); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = A
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 99)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(A, B)
			}
		})
	}
}
