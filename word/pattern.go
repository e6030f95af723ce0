package word

import (
	"errors"
	"fmt"
	"strings"
)

// Color is the per-position feedback in a Wordle game.
type Color uint8

const (
	// Black marks a letter that does not occur in the solution (or
	// whose occurrences are already accounted for).
	Black Color = 0
	// Yellow marks a letter that occurs in the solution at another
	// position.
	Yellow Color = 1
	// Green marks a correct letter in the correct position.
	Green Color = 2
)

func (c Color) String() string {
	switch c {
	case Green:
		return "g"
	case Yellow:
		return "y"
	default:
		return "b"
	}
}

var ErrPatternChar = errors.New("pattern character must be one of b, y, g")

// ParseColor converts one feedback character into a Color.
func ParseColor(c byte) (Color, error) {
	switch c {
	case 'b':
		return Black, nil
	case 'y':
		return Yellow, nil
	case 'g':
		return Green, nil
	}
	return Black, fmt.Errorf("%w: got %q", ErrPatternChar, string(c))
}

// pow3 holds the base-3 place values for each position, plus one extra
// entry so position Length-1 can be masked the same way as the others.
var pow3 = [Length + 1]uint16{1, 3, 9, 27, 81, 243}

// A Pattern packs the Length feedback colors into a single base-3
// numeral: position i contributes color * 3^i. The zero value is the
// all-black pattern. The encoding is a bijection onto [0, NumPatterns),
// so a Pattern doubles as a dense array index.
type Pattern uint8

// Index returns the pattern's integer encoding, usable directly as an
// index into a [NumPatterns]-sized table.
func (p Pattern) Index() int {
	return int(p)
}

// At returns the color at position i.
func (p Pattern) At(i int) Color {
	return Color(uint16(p) % pow3[i+1] / pow3[i])
}

// Set replaces the color at position i, leaving the other positions
// untouched. It is the only mutator; patterns are built with it during
// scoring and parsing and treated as immutable afterwards.
func (p *Pattern) Set(i int, c Color) {
	lower := uint16(*p) % pow3[i]
	higher := uint16(*p) / pow3[i+1] * pow3[i+1]
	*p = Pattern(lower + higher + pow3[i]*uint16(c))
}

// AllGreen is the pattern a guess scores against itself.
func AllGreen() Pattern {
	var p Pattern
	for i := 0; i < Length; i++ {
		p.Set(i, Green)
	}
	return p
}

// ParsePattern validates text as exactly Length characters from
// {b, y, g} and returns the encoded pattern.
func ParsePattern(text string) (Pattern, error) {
	var p Pattern
	text = strings.TrimSpace(text)
	if len(text) != Length {
		return p, fmt.Errorf("pattern %q must have exactly %d characters", text, Length)
	}
	for i := 0; i < Length; i++ {
		c, err := ParseColor(text[i])
		if err != nil {
			return p, err
		}
		p.Set(i, c)
	}
	return p, nil
}

// String renders the colors left to right, one character per position.
// ParsePattern(p.String()) always round-trips.
func (p Pattern) String() string {
	var sb strings.Builder
	for i := 0; i < Length; i++ {
		sb.WriteString(p.At(i).String())
	}
	return sb.String()
}

// Display renders the pattern with ANSI colors for terminal output.
func (p Pattern) Display() string {
	var sb strings.Builder
	for i := 0; i < Length; i++ {
		switch p.At(i) {
		case Green:
			sb.WriteString("\033[32mg\033[0m")
		case Yellow:
			sb.WriteString("\033[33my\033[0m")
		default:
			sb.WriteString("\033[90mb\033[0m")
		}
	}
	return sb.String()
}
