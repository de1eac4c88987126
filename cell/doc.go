// Package cell implements the 8-bit cell codec at the heart of
// cellwave.
//
// Every 8-bit pattern has three interchangeable views:
//   - an integer byte value 0..255
//   - a glyph in the Unicode braille block (U+2800 + value)
//   - an 8-element binary vector (bit i of the value is coordinate i)
//
// The three views are mutually inverse and total: the codec maintains
// fixed forward and inverse lookup arrays over the full 256-value
// domain, so the bijection is mechanically checkable by exhaustive
// sweep.
//
// On top of the codec the package provides:
//   - text encoding: byte-per-symbol conversion between UTF-8 text,
//     glyph strings, and vector sequences
//   - linear-algebra primitives over 8-element real vectors
//   - Hamming and cosine distance measures
//   - a lossy PCA compression mode with exact reconstruction at full
//     rank
//   - descriptive statistics over vector distributions
//
// All operations are pure functions of their inputs; the package holds
// no mutable state beyond its construction-time lookup tables.
package cell
