package cell

import (
	"fmt"
	"math"
)

// Distribution summarizes how a vector sequence uses the 256-value
// byte space.
type Distribution struct {
	DistinctPatterns int     // count of distinct byte patterns used
	MeanActiveBits   float64 // average active-coordinate count per symbol
	Entropy          float64 // Shannon entropy of the byte distribution, 0..8 bits
}

// AnalyzeDistribution computes descriptive statistics over a vector
// sequence. It has no side effects and fails only on malformed input.
func AnalyzeDistribution(vecs [][]float64) (Distribution, error) {
	if len(vecs) == 0 {
		return Distribution{}, fmt.Errorf("cell: analyze: empty input")
	}

	var counts [256]int
	totalBits := 0
	for i, v := range vecs {
		b, err := VectorToByte(v)
		if err != nil {
			return Distribution{}, fmt.Errorf("vector %d: %w", i, err)
		}
		counts[b]++
		for j := 0; j < Dim; j++ {
			if b&(1<<j) != 0 {
				totalBits++
			}
		}
	}

	n := float64(len(vecs))
	distinct := 0
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		distinct++
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}

	return Distribution{
		DistinctPatterns: distinct,
		MeanActiveBits:   float64(totalBits) / n,
		Entropy:          entropy,
	}, nil
}
