// Package solver implements the scoring, entropy, and filtering engine
// behind the Wordle solver: comparing a guess to a solution, ranking
// candidate guesses by expected information gain, and narrowing the
// solution space as feedback comes in.
package solver

import (
	"github.com/jakobteuber/wordle/word"
)

// Score computes the feedback pattern for guessing `guess` when the
// solution is `solution`. Two passes: positional matches go green
// first, then remaining guess letters go yellow left to right while
// unmatched occurrences of that letter remain in the solution, black
// afterwards. The second pass consumes a per-letter counter so that a
// letter is never credited more often than it occurs in the solution.
func Score(guess, solution word.Word) word.Pattern {
	var pattern word.Pattern
	var counts [26]uint8

	for i := 0; i < word.Length; i++ {
		if guess[i] == solution[i] {
			pattern.Set(i, word.Green)
		} else {
			counts[solution[i]-'a']++
		}
	}
	for i := 0; i < word.Length; i++ {
		if pattern.At(i) == word.Green {
			continue
		}
		if counts[guess[i]-'a'] > 0 {
			pattern.Set(i, word.Yellow)
			counts[guess[i]-'a']--
		}
	}
	return pattern
}
