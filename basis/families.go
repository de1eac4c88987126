package basis

// Full returns the full 8-dimensional basis over dots 1..8.
func Full() Basis {
	return Filtration()[MaxDots]
}

// SixDot returns the classic 6-dot basis over dots 1..6.
func SixDot() Basis {
	return Filtration()[6]
}

// Filtration returns the chain B0 ⊂ B1 ⊂ … ⊂ B8, where Bk spans dots
// {1..k}. B0 is the trivial basis.
func Filtration() [MaxDots + 1]Basis {
	var out [MaxDots + 1]Basis
	dots := make([]int, 0, MaxDots)
	out[0] = MustNew()
	for k := 1; k <= MaxDots; k++ {
		dots = append(dots, k)
		out[k] = MustNew(dots...)
	}
	return out
}

// SixOfEight returns the 28 six-dimensional sub-spaces of the full
// space, one per excluded pair of dots. Enumeration order is by the
// excluded pair (i, j), i < j, both ascending.
func SixOfEight() []Basis {
	out := make([]Basis, 0, 28)
	for i := 1; i <= MaxDots; i++ {
		for j := i + 1; j <= MaxDots; j++ {
			dots := make([]int, 0, 6)
			for d := 1; d <= MaxDots; d++ {
				if d != i && d != j {
					dots = append(dots, d)
				}
			}
			out = append(out, MustNew(dots...))
		}
	}
	return out
}
