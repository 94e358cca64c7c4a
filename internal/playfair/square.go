package playfair

import (
	"fmt"
	"strings"
)

const (
	// Size is the side length of the square.
	Size = 5
	// Cells is the number of cells in the square.
	Cells = Size * Size
)

// KeySquare is the 5x5 grid of distinct lowercase letters derived from a key.
// It is immutable once built.
type KeySquare struct {
	letters [Cells]rune
}

// NewKeySquare builds the square from the key's letters in order of first
// appearance, followed by the rest of the alphabet. The ignore letter is left out.
func NewKeySquare(key string, ignore rune) (*KeySquare, error) {
	if ignore < 'a' || ignore > 'z' {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidIgnoreChar, ignore)
	}

	var (
		square KeySquare
		seen   [26]bool
		n      int
	)

	add := func(r rune) {
		if r < 'a' || r > 'z' || r == ignore || seen[r-'a'] {
			return
		}

		seen[r-'a'] = true
		square.letters[n] = r
		n++
	}

	for _, r := range strings.ToLower(key) {
		add(r)
	}

	for r := 'a'; r <= 'z'; r++ {
		add(r)
	}

	return &square, nil
}

// PositionOf returns the index of letter in the square.
func (k *KeySquare) PositionOf(letter rune) (int, error) {
	for i, r := range k.letters {
		if r == letter {
			return i, nil
		}
	}

	return 0, &MissingCharacterError{Letter: letter}
}

// At returns the letter at column x and row y. Both wrap around.
func (k *KeySquare) At(x, y int) rune {
	x = mod(x)
	y = mod(y)

	return k.letters[y*Size+x]
}

// Letters returns the 25 letters in row-major order.
func (k *KeySquare) Letters() string {
	return string(k.letters[:])
}

// String renders the square as five rows, e.g. "| d e a t h |".
func (k *KeySquare) String() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		cells := make([]string, Size)

		for col := 0; col < Size; col++ {
			cells[col] = string(k.At(col, row))
		}

		fmt.Fprintf(&sb, "| %s |\n", strings.Join(cells, " "))
	}

	return sb.String()
}

func mod(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}

	return v
}
