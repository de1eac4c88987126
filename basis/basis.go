// Package basis implements sub-spaces of the 8-bit cell space.
//
// A Basis is an ordered, duplicate-free subset of the eight dot
// positions {1..8}. It defines a k-dimensional binary sub-space
// together with the algebra of that sub-space: XOR addition,
// popcount inner product, Hamming distance, complement, and full
// enumeration of all 2^k elements.
//
// Bases carry a canonical machine label of the form
//
//	Z2^k[D=<sorted dot digits>]
//
// which round-trips exactly through FromMachineLabel.
package basis

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// MaxDots is the number of dot positions in the full cell space.
const MaxDots = 8

var (
	// ErrInvalidDotSet reports a malformed dot set: a dot outside
	// 1..8 or a duplicate position.
	ErrInvalidDotSet = errors.New("basis: invalid dot set")

	// ErrDimensionMismatch reports a vector or label whose dimension
	// does not match the basis.
	ErrDimensionMismatch = errors.New("basis: dimension mismatch")
)

// Basis is an immutable sub-space of the 8-bit cell space, defined by
// which dot positions it uses. The zero value is the trivial
// 0-dimensional basis.
type Basis struct {
	dots []int // ordered, duplicate-free, each in 1..8
	mask byte
}

// New constructs a Basis from the given dot positions. Positions must
// be in 1..8 and duplicate-free; order is preserved and determines the
// coordinate mapping. An empty dot set yields the trivial basis.
func New(dots ...int) (Basis, error) {
	var mask byte
	owned := make([]int, len(dots))
	for i, d := range dots {
		if d < 1 || d > MaxDots {
			return Basis{}, fmt.Errorf("%w: dot %d out of range 1..%d", ErrInvalidDotSet, d, MaxDots)
		}
		bit := byte(1) << (d - 1)
		if mask&bit != 0 {
			return Basis{}, fmt.Errorf("%w: duplicate dot %d", ErrInvalidDotSet, d)
		}
		mask |= bit
		owned[i] = d
	}
	return Basis{dots: owned, mask: mask}, nil
}

// MustNew is New for statically known dot sets; it panics on error.
func MustNew(dots ...int) Basis {
	b, err := New(dots...)
	if err != nil {
		panic(err)
	}
	return b
}

// Dim returns the dimension k of the sub-space.
func (b Basis) Dim() int { return len(b.dots) }

// Dots returns a copy of the ordered dot positions.
func (b Basis) Dots() []int {
	out := make([]int, len(b.dots))
	copy(out, b.dots)
	return out
}

// Mask returns the bit mask covering the basis's dot positions.
func (b Basis) Mask() byte { return b.mask }

// Equal reports whether two bases span the same dot set. Order is a
// coordinate convention, not part of identity.
func (b Basis) Equal(o Basis) bool { return b.mask == o.mask }

// VectorToByte embeds a k-vector into the full 8-bit space at the
// basis's dot positions. Bits outside the basis are zero. Coordinates
// are rounded; any coordinate rounding to a nonzero value is active.
func (b Basis) VectorToByte(vec []float64) (byte, error) {
	if len(vec) != len(b.dots) {
		return 0, fmt.Errorf("%w: got %d coordinates, basis has %d", ErrDimensionMismatch, len(vec), len(b.dots))
	}
	var out byte
	for i, d := range b.dots {
		if math.Round(vec[i]) != 0 {
			out |= 1 << (d - 1)
		}
	}
	return out, nil
}

// ByteToVector projects a full-width byte onto the basis, reading one
// coordinate per dot position. Bits outside the basis are ignored, so
// the projection is lossy on the full space but inverse to
// VectorToByte on the basis's own coordinates.
func (b Basis) ByteToVector(v byte) []float64 {
	out := make([]float64, len(b.dots))
	for i, d := range b.dots {
		if v&(1<<(d-1)) != 0 {
			out[i] = 1
		}
	}
	return out
}

// Project keeps only the bits covered by the basis.
func (b Basis) Project(v byte) byte { return v & b.mask }

// EmbedInto re-expresses a value of this basis in another basis by
// coordinate index: coordinate i of this basis becomes coordinate i of
// dst. Extra coordinates are truncated, missing ones are zero. Lossy
// whenever the dot sets differ.
func (b Basis) EmbedInto(dst Basis, v byte) byte {
	var out byte
	for i, d := range b.dots {
		if i >= len(dst.dots) {
			break
		}
		if v&(1<<(d-1)) != 0 {
			out |= 1 << (dst.dots[i] - 1)
		}
	}
	return out
}

// Add is XOR addition restricted to the sub-space.
func (b Basis) Add(x, y byte) byte { return (x ^ y) & b.mask }

// Inner is the popcount inner product over the sub-space.
func (b Basis) Inner(x, y byte) int { return bits.OnesCount8(x & y & b.mask) }

// Distance is the Hamming distance over the sub-space.
func (b Basis) Distance(x, y byte) int { return bits.OnesCount8((x ^ y) & b.mask) }

// Weight is the Hamming weight of a value within the sub-space.
func (b Basis) Weight(x byte) int { return bits.OnesCount8(x & b.mask) }

// Complement flips every bit covered by the basis.
func (b Basis) Complement(x byte) byte { return (x ^ b.mask) & b.mask }

// Zero returns the additive identity of the sub-space.
func (b Basis) Zero() byte { return 0 }

// Max returns the maximal element, with every basis bit set.
func (b Basis) Max() byte { return b.mask }

// Enumerate returns all 2^k elements of the sub-space as full-width
// byte values, in increasing coordinate order: element i has
// coordinate j set iff bit j of i is set.
func (b Basis) Enumerate() []byte {
	n := 1 << len(b.dots)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var v byte
		for j, d := range b.dots {
			if i&(1<<j) != 0 {
				v |= 1 << (d - 1)
			}
		}
		out[i] = v
	}
	return out
}

// IsSubBasisOf reports whether every dot of b is also a dot of o.
func (b Basis) IsSubBasisOf(o Basis) bool { return b.mask&^o.mask == 0 }

// Intersect returns the basis over the set intersection of dot
// positions, ordered by ascending dot number.
func (b Basis) Intersect(o Basis) Basis { return fromMask(b.mask & o.mask) }

// Union returns the basis over the set union of dot positions, ordered
// by ascending dot number.
func (b Basis) Union(o Basis) Basis { return fromMask(b.mask | o.mask) }

func fromMask(mask byte) Basis {
	var dots []int
	for d := 1; d <= MaxDots; d++ {
		if mask&(1<<(d-1)) != 0 {
			dots = append(dots, d)
		}
	}
	return Basis{dots: dots, mask: mask}
}

// sortedDots returns the dot positions in ascending order, for the
// canonical label.
func (b Basis) sortedDots() []int {
	out := b.Dots()
	sort.Ints(out)
	return out
}
