package basis

import (
	"fmt"
	"strconv"
	"strings"
)

// MachineLabel returns the canonical label of the basis, of the exact
// form Z2^k[D=<digits>] with dot digits sorted ascending. The trivial
// basis formats as Z2^0[D=].
func (b Basis) MachineLabel() string {
	var sb strings.Builder
	sb.WriteString("Z2^")
	sb.WriteString(strconv.Itoa(len(b.dots)))
	sb.WriteString("[D=")
	for _, d := range b.sortedDots() {
		sb.WriteByte(byte('0' + d))
	}
	sb.WriteString("]")
	return sb.String()
}

// FromMachineLabel parses a canonical machine label back into a Basis.
// The declared dimension must equal the number of dot digits, and the
// digits must form a valid dot set.
func FromMachineLabel(label string) (Basis, error) {
	s := strings.TrimSpace(label)
	rest, ok := strings.CutPrefix(s, "Z2^")
	if !ok {
		return Basis{}, fmt.Errorf("%w: label %q missing Z2^ prefix", ErrInvalidDotSet, label)
	}
	dim, rest, ok := cutLabelDim(rest)
	if !ok {
		return Basis{}, fmt.Errorf("%w: label %q has no dimension", ErrInvalidDotSet, label)
	}
	digits, ok := strings.CutSuffix(rest, "]")
	if !ok {
		return Basis{}, fmt.Errorf("%w: label %q missing closing bracket", ErrInvalidDotSet, label)
	}
	digits, ok = strings.CutPrefix(digits, "[D=")
	if !ok {
		return Basis{}, fmt.Errorf("%w: label %q missing [D= section", ErrInvalidDotSet, label)
	}

	dots := make([]int, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '1' || c > '8' {
			return Basis{}, fmt.Errorf("%w: label %q has dot digit %q", ErrInvalidDotSet, label, string(c))
		}
		dots = append(dots, int(c-'0'))
	}
	if dim != len(dots) {
		return Basis{}, fmt.Errorf("%w: label %q declares dimension %d but lists %d dots",
			ErrDimensionMismatch, label, dim, len(dots))
	}
	return New(dots...)
}

// cutLabelDim splits the leading decimal dimension off the label tail.
func cutLabelDim(s string) (dim int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}
	return n, s[i:], true
}
