package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/jakobteuber/wordle/word"
)

func TestFilterSoundness(t *testing.T) {
	is := is.New(t)
	space := wordList("tears", "bears", "pears", "fears", "years", "lulls")
	guess := word.MustParse("tears")
	for _, solution := range space {
		survivors := Filter(space, guess, Score(guess, solution))
		found := false
		for _, w := range survivors {
			if w == solution {
				found = true
			}
		}
		is.True(found) // the true solution must survive its own feedback
	}
}

func TestFilterIdempotent(t *testing.T) {
	is := is.New(t)
	space := wordList("tears", "bears", "pears", "fears", "years", "lulls")
	guess := word.MustParse("bears")
	observed := Score(guess, word.MustParse("pears"))

	once := Filter(space, guess, observed)
	twice := Filter(once, guess, observed)
	is.Equal(once, twice)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	is := is.New(t)
	space := wordList("years", "tears", "bears", "lulls", "pears")
	guess := word.MustParse("sears")
	observed := Score(guess, word.MustParse("tears"))

	survivors := Filter(space, guess, observed)
	// years, tears, bears, pears all score bgggg against sears.
	is.Equal(survivors, wordList("years", "tears", "bears", "pears"))
	// Input is untouched.
	is.Equal(space, wordList("years", "tears", "bears", "lulls", "pears"))
}

func TestFilterCanEmpty(t *testing.T) {
	is := is.New(t)
	space := wordList("tears", "bears")
	observed, err := word.ParsePattern("ggggg")
	is.NoErr(err)
	is.Equal(len(Filter(space, word.MustParse("lulls"), observed)), 0)
}
