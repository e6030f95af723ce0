// Package word contains the value types for the solver: fixed-length
// words and the per-position feedback patterns they score to.
package word

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the fixed word length. All of Wordle uses 5; any other
// constant would work, as long as NumPatterns is kept at 3^Length.
const Length = 5

// NumPatterns is the number of distinct feedback patterns, 3^Length.
const NumPatterns = 243

var (
	ErrWordLength = errors.New("word has wrong length")
	ErrWordChar   = errors.New("word has non-letter character")
)

// A Word is a fixed-length sequence of lowercase ASCII letters. It is
// copied and compared by value; construct one with Parse and treat it
// as immutable afterwards.
type Word [Length]byte

// Parse trims surrounding whitespace, lowercases, and validates the
// given text as a Word.
func Parse(text string) (Word, error) {
	var w Word
	text = strings.TrimSpace(text)
	if len(text) != Length {
		return w, fmt.Errorf("%w: %q", ErrWordLength, text)
	}
	for i := 0; i < Length; i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%w: %q", ErrWordChar, text)
		}
		w[i] = c
	}
	return w, nil
}

// MustParse is a test and initialization helper; it panics on bad input.
func MustParse(text string) Word {
	w, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}
