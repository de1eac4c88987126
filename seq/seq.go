// Package seq implements a free monoid over arbitrary-length symbol
// sequences: concatenation with the empty sequence as identity, plus
// pointwise algebra, folding, content addressing, and basis projection
// lifted from single symbols to whole sequences.
package seq

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cellwave/cellwave/basis"
	"github.com/cellwave/cellwave/cell"
)

// Sequence is an immutable ordered list of symbols. The zero value is
// the empty sequence, the monoid identity.
type Sequence struct {
	syms []byte
}

// Empty returns the monoid identity.
func Empty() Sequence { return Sequence{} }

// FromSymbol builds a one-element sequence.
func FromSymbol(b byte) Sequence { return Sequence{syms: []byte{b}} }

// FromBytes builds a sequence from raw byte values. The input is
// copied.
func FromBytes(bs []byte) Sequence {
	owned := make([]byte, len(bs))
	copy(owned, bs)
	return Sequence{syms: owned}
}

// FromText builds a sequence from the text's underlying bytes,
// byte-for-byte rather than rune-for-rune.
func FromText(text string) Sequence {
	return Sequence{syms: []byte(text)}
}

// FromGlyphs builds a sequence from a symbol-glyph string. Runes
// outside the glyph block fail.
func FromGlyphs(glyphs string) (Sequence, error) {
	text, err := cell.Decode(glyphs)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{syms: []byte(text)}, nil
}

// Bytes returns a copy of the symbol values.
func (s Sequence) Bytes() []byte {
	out := make([]byte, len(s.syms))
	copy(out, s.syms)
	return out
}

// Text returns the sequence as raw text, the inverse of FromText.
func (s Sequence) Text() string { return string(s.syms) }

// Glyphs returns the sequence as a symbol-glyph string.
func (s Sequence) Glyphs() string { return cell.Encode(string(s.syms)) }

// Length is the monoid homomorphism to the naturals.
func (s Sequence) Length() int { return len(s.syms) }

// Concat appends o after s. Associative, non-commutative.
func Concat(s, o Sequence) Sequence {
	out := make([]byte, 0, len(s.syms)+len(o.syms))
	out = append(out, s.syms...)
	out = append(out, o.syms...)
	return Sequence{syms: out}
}

// ConcatAll folds Concat over any number of sequences. With no
// arguments it returns the identity.
func ConcatAll(seqs ...Sequence) Sequence {
	n := 0
	for _, s := range seqs {
		n += len(s.syms)
	}
	out := make([]byte, 0, n)
	for _, s := range seqs {
		out = append(out, s.syms...)
	}
	return Sequence{syms: out}
}

// XOR combines the aligned prefixes pointwise; the result has the
// length of the shorter operand.
func (s Sequence) XOR(o Sequence) Sequence {
	n := min(len(s.syms), len(o.syms))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s.syms[i] ^ o.syms[i]
	}
	return Sequence{syms: out}
}

// AND combines the aligned prefixes pointwise; the result has the
// length of the shorter operand.
func (s Sequence) AND(o Sequence) Sequence {
	n := min(len(s.syms), len(o.syms))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s.syms[i] & o.syms[i]
	}
	return Sequence{syms: out}
}

// HammingDistance sums bit distances over the aligned prefix and
// charges the full 8-bit dimension for each unmatched trailing symbol.
// The length penalty is a documented tie-break, not an error.
func (s Sequence) HammingDistance(o Sequence) int {
	n := min(len(s.syms), len(o.syms))
	d := 0
	for i := 0; i < n; i++ {
		d += bits.OnesCount8(s.syms[i] ^ o.syms[i])
	}
	longer := max(len(s.syms), len(o.syms))
	return d + cell.Dim*(longer-n)
}

// HammingDistanceIn measures distance within a sub-space: aligned
// symbols are compared through the basis, and each unmatched trailing
// symbol charges the basis dimension k instead of the full 8.
func (s Sequence) HammingDistanceIn(b basis.Basis, o Sequence) int {
	n := min(len(s.syms), len(o.syms))
	d := 0
	for i := 0; i < n; i++ {
		d += b.Distance(s.syms[i], o.syms[i])
	}
	longer := max(len(s.syms), len(o.syms))
	return d + b.Dim()*(longer-n)
}

// Fold halves the sequence by XOR-ing adjacent pairs. An odd trailing
// symbol passes through unchanged. Folding is not idempotent.
func (s Sequence) Fold() Sequence {
	out := make([]byte, 0, (len(s.syms)+1)/2)
	for i := 0; i+1 < len(s.syms); i += 2 {
		out = append(out, s.syms[i]^s.syms[i+1])
	}
	if len(s.syms)%2 == 1 {
		out = append(out, s.syms[len(s.syms)-1])
	}
	return Sequence{syms: out}
}

// Reduce XOR-folds the whole sequence into a single content checksum
// symbol. The empty sequence reduces to 0.
func (s Sequence) Reduce() byte {
	var acc byte
	for _, b := range s.syms {
		acc ^= b
	}
	return acc
}

// Prefix returns the first n symbols.
func (s Sequence) Prefix(n int) (Sequence, error) {
	return s.Slice(0, n)
}

// Suffix returns the last n symbols.
func (s Sequence) Suffix(n int) (Sequence, error) {
	if n < 0 || n > len(s.syms) {
		return Sequence{}, fmt.Errorf("%w: suffix length %d of %d", cell.ErrInvalidIndex, n, len(s.syms))
	}
	return s.Slice(len(s.syms)-n, len(s.syms))
}

// Slice returns the symbols in [lo, hi).
func (s Sequence) Slice(lo, hi int) (Sequence, error) {
	if lo < 0 || hi < lo || hi > len(s.syms) {
		return Sequence{}, fmt.Errorf("%w: slice [%d, %d) of %d", cell.ErrInvalidIndex, lo, hi, len(s.syms))
	}
	return FromBytes(s.syms[lo:hi]), nil
}

// IsPrefixOf reports whether s is a prefix of o. The empty sequence is
// a prefix of everything.
func (s Sequence) IsPrefixOf(o Sequence) bool {
	if len(s.syms) > len(o.syms) {
		return false
	}
	for i, b := range s.syms {
		if o.syms[i] != b {
			return false
		}
	}
	return true
}

// Equals reports structural equality.
func (s Sequence) Equals(o Sequence) bool {
	if len(s.syms) != len(o.syms) {
		return false
	}
	for i, b := range s.syms {
		if o.syms[i] != b {
			return false
		}
	}
	return true
}

// hashSeed and hashMult parameterize the order-sensitive streaming
// hash. Plain multiplicative accumulation: cheap, deterministic, no
// avalanche.
const (
	hashSeed uint32 = 5381
	hashMult uint32 = 33
)

// Hash computes a 32-bit order-sensitive content address of the
// sequence.
func (s Sequence) Hash() uint32 {
	h := hashSeed
	for _, b := range s.syms {
		h = h*hashMult + uint32(b)
	}
	return h
}

// Entropy computes the Shannon entropy of the sequence's byte
// distribution, in bits. The empty sequence has zero entropy.
func (s Sequence) Entropy() float64 {
	if len(s.syms) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range s.syms {
		counts[b]++
	}
	n := float64(len(s.syms))
	e := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		e -= p * math.Log2(p)
	}
	return e
}

// Project applies the basis projection to every symbol, preserving
// length.
func (s Sequence) Project(b basis.Basis) Sequence {
	out := make([]byte, len(s.syms))
	for i, sym := range s.syms {
		out[i] = b.Project(sym)
	}
	return Sequence{syms: out}
}
