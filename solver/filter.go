package solver

import (
	"github.com/jakobteuber/wordle/word"
)

// Filter returns the members of space that are still consistent with
// observing `observed` after guessing `guess`: exactly those words w
// with Score(guess, w) == observed. The result is a fresh slice and
// preserves the relative order of survivors, which keeps output and
// tests deterministic. If observed really was the feedback for the
// true solution, the true solution survives.
func Filter(space []word.Word, guess word.Word, observed word.Pattern) []word.Word {
	filtered := make([]word.Word, 0, len(space))
	for _, w := range space {
		if Score(guess, w) == observed {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
