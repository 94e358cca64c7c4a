package playfair

// Mode selects the direction of the line substitutions.
type Mode byte

const (
	// Encipher shifts right or down.
	Encipher Mode = iota
	// Decipher shifts left or up.
	Decipher
)

// Step returns the coordinate shift applied to line shapes, modulo the square size.
func (m Mode) Step() int {
	if m == Decipher {
		return Size - 1
	}

	return 1
}

func (m Mode) String() string {
	if m == Decipher {
		return "decipher"
	}

	return "encipher"
}

// MarshalText renders the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
