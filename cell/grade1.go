package cell

import "strings"

// Grade-1 letter cells: the dot patterns of a..z, with space mapped to
// the blank cell. Only lowercase letters are covered; every other rune
// falls back to blank.
var gradeOneForLetter = map[rune]byte{
	'a': 0x01, 'b': 0x03, 'c': 0x09, 'd': 0x19, 'e': 0x11,
	'f': 0x0B, 'g': 0x1B, 'h': 0x13, 'i': 0x0A, 'j': 0x1A,
	'k': 0x05, 'l': 0x07, 'm': 0x0D, 'n': 0x1D, 'o': 0x15,
	'p': 0x0F, 'q': 0x1F, 'r': 0x17, 's': 0x0E, 't': 0x1E,
	'u': 0x25, 'v': 0x27, 'w': 0x3A, 'x': 0x2D, 'y': 0x3D,
	'z': 0x35, ' ': 0x00,
}

var letterForGradeOne = func() map[byte]rune {
	m := make(map[byte]rune, len(gradeOneForLetter))
	for r, b := range gradeOneForLetter {
		m[b] = r
	}
	return m
}()

// LetterToGlyph returns the grade-1 glyph for a letter, lowercasing
// first. Unknown runes map to the blank cell.
func LetterToGlyph(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return ByteToChar(gradeOneForLetter[r])
}

// GlyphToLetter is the inverse of LetterToGlyph for the 27 covered
// cells; any other glyph returns a space.
func GlyphToLetter(g rune) rune {
	b, err := CharToByte(g)
	if err != nil {
		return ' '
	}
	if r, ok := letterForGradeOne[b]; ok {
		return r
	}
	return ' '
}

// GradeOneEncode maps each rune of the text to its grade-1 glyph.
func GradeOneEncode(text string) string {
	var sb strings.Builder
	for _, r := range text {
		sb.WriteRune(LetterToGlyph(r))
	}
	return sb.String()
}

// GradeOneDecode maps each glyph back to its letter.
func GradeOneDecode(glyphs string) string {
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteRune(GlyphToLetter(g))
	}
	return sb.String()
}
