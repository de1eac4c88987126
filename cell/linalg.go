package cell

import (
	"fmt"
	"math"
)

// Dot computes the inner product of two equal-length vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrVectorLength, len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Norm computes the Euclidean norm.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns the unit vector in the direction of v. A zero-norm
// input fails with ErrDegenerateVector rather than producing NaN.
func Normalize(v []float64) ([]float64, error) {
	n := Norm(v)
	if n == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrDegenerateVector)
	}
	out := make([]float64, len(v))
	inv := 1 / n
	for i, x := range v {
		out[i] = x * inv
	}
	return out, nil
}

// MatVecMul multiplies an m×n matrix (rows) by an n-vector.
func MatVecMul(m [][]float64, v []float64) ([]float64, error) {
	out := make([]float64, len(m))
	for i, row := range m {
		if len(row) != len(v) {
			return nil, fmt.Errorf("%w: row %d has %d columns, vector has %d", ErrVectorLength, i, len(row), len(v))
		}
		var sum float64
		for j, x := range row {
			sum += x * v[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Transpose returns the transpose of a rectangular matrix.
func Transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// HammingDistance counts coordinates whose rounded values differ.
func HammingDistance(a, b []float64) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrVectorLength, len(a), len(b))
	}
	d := 0
	for i := range a {
		if active(a[i]) != active(b[i]) {
			d++
		}
	}
	return d, nil
}

// CosineSimilarity computes dot(a,b) / (|a|·|b|). It is undefined when
// either vector is all-zero and fails with ErrDegenerateVector in that
// case; callers must special-case zero inputs themselves.
func CosineSimilarity(a, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("cosine similarity: %w", ErrDegenerateVector)
	}
	return dot / (na * nb), nil
}
