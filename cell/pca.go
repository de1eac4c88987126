package cell

import (
	"fmt"
	"math"
)

// Compressed holds the output of the PCA compression mode: the
// projected coordinates plus the basis and mean needed to reconstruct
// an approximation of the original vectors.
type Compressed struct {
	Data        [][]float64 // n × K projected coordinates
	Components  [][]float64 // K × Dim orthonormal principal axes, leading first
	Mean        []float64   // Dim-element mean of the input
	Eigenvalues []float64   // all Dim eigenvalues, descending
	K           int

	// CompressionRatio is original bits over compressed bits under the
	// one-bit-per-coordinate model, i.e. Dim/K.
	CompressionRatio float64

	// VarianceExplained is the fraction of total variance captured by
	// the K retained components. A degenerate input with zero total
	// variance reports 1.
	VarianceExplained float64
}

// Reconstruction is the output of Decompress.
type Reconstruction struct {
	Text    string      // re-snapped to {0,1} and decoded
	Vectors [][]float64 // approximate vectors before snapping
	Error   float64     // mean squared per-coordinate deviation from the original
}

// Compress encodes the text to vectors and compresses them to k
// principal components, 1 ≤ k ≤ 8. At k = 8 the transform is lossless.
func Compress(text string, k int) (*Compressed, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("cell: compress: empty input")
	}
	return CompressVectors(TextToVectors(text), k)
}

// CompressVectors compresses a sequence of 8-element vectors to k
// principal components.
func CompressVectors(vecs [][]float64, k int) (*Compressed, error) {
	if k < 1 || k > Dim {
		return nil, fmt.Errorf("%w: target dimension %d outside 1..%d", ErrVectorLength, k, Dim)
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("cell: compress: empty input")
	}
	for i, v := range vecs {
		if len(v) != Dim {
			return nil, fmt.Errorf("%w: vector %d has %d coordinates", ErrVectorLength, i, len(v))
		}
	}

	n := len(vecs)
	mean := make([]float64, Dim)
	for _, v := range vecs {
		for j, x := range v {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	var cov [Dim][Dim]float64
	for _, v := range vecs {
		for a := 0; a < Dim; a++ {
			da := v[a] - mean[a]
			for b := a; b < Dim; b++ {
				cov[a][b] += da * (v[b] - mean[b])
			}
		}
	}
	for a := 0; a < Dim; a++ {
		for b := a; b < Dim; b++ {
			cov[a][b] /= float64(n)
			cov[b][a] = cov[a][b]
		}
	}

	vals, vecsM := jacobiEigen(cov)

	// Order eigenpairs by descending eigenvalue.
	order := [Dim]int{}
	for i := range order {
		order[i] = i
	}
	for i := 0; i < Dim; i++ {
		for j := i + 1; j < Dim; j++ {
			if vals[order[j]] > vals[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	eigen := make([]float64, Dim)
	comps := make([][]float64, k)
	var total, kept float64
	for i := 0; i < Dim; i++ {
		v := vals[order[i]]
		if v < 0 {
			v = 0 // symmetric PSD matrix; negatives are rounding noise
		}
		eigen[i] = v
		total += v
		if i < k {
			kept += v
			row := make([]float64, Dim)
			for j := 0; j < Dim; j++ {
				row[j] = vecsM[j][order[i]]
			}
			comps[i] = row
		}
	}

	varExplained := 1.0
	if total > 0 {
		varExplained = kept / total
	}

	data := make([][]float64, n)
	centered := make([]float64, Dim)
	for i, v := range vecs {
		for j := 0; j < Dim; j++ {
			centered[j] = v[j] - mean[j]
		}
		y := make([]float64, k)
		for c, row := range comps {
			var sum float64
			for j := 0; j < Dim; j++ {
				sum += row[j] * centered[j]
			}
			y[c] = sum
		}
		data[i] = y
	}

	return &Compressed{
		Data:              data,
		Components:        comps,
		Mean:              mean,
		Eigenvalues:       eigen,
		K:                 k,
		CompressionRatio:  float64(Dim) / float64(k),
		VarianceExplained: varExplained,
	}, nil
}

// Decompress reconstructs approximate vectors from the projected data,
// re-snaps them to {0,1}, and decodes the snapped bytes back to text.
// Error is the mean squared deviation of the reconstruction from the
// original data before snapping: the variance left in the discarded
// components, averaged per coordinate.
func Decompress(c *Compressed) (*Reconstruction, error) {
	if c == nil || c.K < 1 || c.K > Dim || len(c.Components) != c.K || len(c.Mean) != Dim {
		return nil, fmt.Errorf("cell: decompress: malformed compressed data")
	}

	recon := make([][]float64, len(c.Data))
	text := make([]byte, len(c.Data))
	for i, y := range c.Data {
		if len(y) != c.K {
			return nil, fmt.Errorf("%w: projected vector %d has %d coordinates, want %d", ErrVectorLength, i, len(y), c.K)
		}
		x := make([]float64, Dim)
		copy(x, c.Mean)
		for cdx, row := range c.Components {
			for j := 0; j < Dim; j++ {
				x[j] += y[cdx] * row[j]
			}
		}
		recon[i] = x
		b, err := VectorToByte(x)
		if err != nil {
			return nil, err
		}
		text[i] = b
	}

	var discarded float64
	for i := c.K; i < len(c.Eigenvalues); i++ {
		discarded += c.Eigenvalues[i]
	}

	return &Reconstruction{
		Text:    string(text),
		Vectors: recon,
		Error:   discarded / Dim,
	}, nil
}

// jacobiEigen diagonalizes a symmetric matrix with cyclic Jacobi
// rotations. Columns of the returned matrix are the eigenvectors. The
// fixed 8×8 size keeps this allocation-free and exact to machine
// precision within a handful of sweeps.
func jacobiEigen(a [Dim][Dim]float64) (vals [Dim]float64, vecs [Dim][Dim]float64) {
	for i := 0; i < Dim; i++ {
		vecs[i][i] = 1
	}

	const maxSweeps = 64
	const tol = 1e-14

	for sweep := 0; sweep < maxSweeps; sweep++ {
		var off float64
		for p := 0; p < Dim; p++ {
			for q := p + 1; q < Dim; q++ {
				off += a[p][q] * a[p][q]
			}
		}
		if off < tol {
			break
		}

		for p := 0; p < Dim; p++ {
			for q := p + 1; q < Dim; q++ {
				if math.Abs(a[p][q]) < tol/Dim {
					continue
				}
				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				cos := 1 / math.Sqrt(t*t+1)
				sin := t * cos

				for i := 0; i < Dim; i++ {
					aip, aiq := a[i][p], a[i][q]
					a[i][p] = cos*aip - sin*aiq
					a[i][q] = sin*aip + cos*aiq
				}
				for i := 0; i < Dim; i++ {
					api, aqi := a[p][i], a[q][i]
					a[p][i] = cos*api - sin*aqi
					a[q][i] = sin*api + cos*aqi
				}
				for i := 0; i < Dim; i++ {
					vip, viq := vecs[i][p], vecs[i][q]
					vecs[i][p] = cos*vip - sin*viq
					vecs[i][q] = sin*vip + cos*viq
				}
			}
		}
	}

	for i := 0; i < Dim; i++ {
		vals[i] = a[i][i]
	}
	return vals, vecs
}
