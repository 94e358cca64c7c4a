package playfair

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrMissingCharacter is matched by every MissingCharacterError.
	ErrMissingCharacter = errors.New("an unavailable character was used")
	// ErrInvalidIgnoreChar is returned when the excluded letter is not a lowercase ASCII letter.
	ErrInvalidIgnoreChar = errors.New("ignore character must be a lowercase letter a-z")
)

// MissingCharacterError reports a letter that is not present in the KeySquare.
type MissingCharacterError struct {
	Letter rune
}

func (e *MissingCharacterError) Error() string {
	return fmt.Sprintf("%v: `%c`", ErrMissingCharacter, unicode.ToUpper(e.Letter))
}

// Is makes errors.Is(err, ErrMissingCharacter) hold.
func (e *MissingCharacterError) Is(target error) bool {
	return target == ErrMissingCharacter
}
