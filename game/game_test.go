package game

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobteuber/wordle/solver"
	"github.com/jakobteuber/wordle/word"
)

func wordList(texts ...string) []word.Word {
	words := make([]word.Word, len(texts))
	for i, text := range texts {
		words[i] = word.MustParse(text)
	}
	return words
}

func TestAssistedGameWins(t *testing.T) {
	is := is.New(t)
	words := wordList("tears", "bears", "pears", "lulls", "glyph")
	g := NewGame(words, Options{})
	is.Equal(g.Playing(), InProgress)
	is.Equal(len(g.SolutionSpace()), len(words))

	// Feedback for guessing tears when the answer is bears: the space
	// narrows to {bears, pears}, then a second round settles it.
	guess := word.MustParse("tears")
	playing, err := g.Advance(guess, solver.Score(guess, word.MustParse("bears")))
	is.NoErr(err)
	is.Equal(playing, InProgress)
	is.Equal(g.SolutionSpace(), wordList("bears", "pears"))

	guess = word.MustParse("bears")
	playing, err = g.Advance(guess, solver.Score(guess, word.MustParse("bears")))
	is.NoErr(err)
	is.Equal(playing, Won)
	is.Equal(g.Round(), 2)

	_, err = g.Advance(guess, word.AllGreen())
	is.True(err == ErrGameOver)
}

func TestAssistedGameLostEmpty(t *testing.T) {
	is := is.New(t)
	g := NewGame(wordList("tears", "bears"), Options{})
	// Inconsistent feedback: nothing in the list can match.
	observed, err := word.ParsePattern("ggggb")
	is.NoErr(err)
	playing, err := g.Advance(word.MustParse("tears"), observed)
	is.NoErr(err)
	is.Equal(playing, LostEmpty)
}

func TestGameLostExhausted(t *testing.T) {
	is := is.New(t)
	secret := word.MustParse("lulls")
	words := wordList("tears", "bears", "pears", "fears", "years", "sears", "dears", "lulls")
	g := NewGame(words, Options{Secret: &secret, MaxRounds: 3})

	// Keep guessing wrong on purpose.
	for i, text := range []string{"tears", "bears", "pears", "fears"} {
		_, playing, err := g.AdvanceSelf(word.MustParse(text))
		is.NoErr(err)
		if i < 3 {
			is.Equal(playing, InProgress)
		} else {
			is.Equal(playing, LostExhausted)
		}
	}
	is.Equal(g.Round(), 4) // the sentinel round, budget + 1
	is.Equal(g.MaxRounds(), 3)
}

func TestSelfPlayWonOnSecret(t *testing.T) {
	is := is.New(t)
	secret := word.MustParse("tears")
	g := NewGame(wordList("tears", "bears"), Options{Secret: &secret})
	observed, playing, err := g.AdvanceSelf(word.MustParse("tears"))
	is.NoErr(err)
	is.Equal(observed, word.AllGreen())
	is.Equal(playing, Won)
	is.Equal(g.Round(), 1)
}

func TestChooseGuessPolicy(t *testing.T) {
	ctx := context.Background()
	words := wordList("tears", "bears", "pears", "lulls")
	secret := word.MustParse("lulls")
	g := NewGame(words, Options{Secret: &secret, Threads: 2})

	// Round 1 is always the opening word, no entropy computed.
	guess, err := g.ChooseGuess(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultOpeningWord, guess)

	_, _, err = g.AdvanceSelf(guess)
	require.NoError(t, err)
	// tears vs lulls scores bbbby; only lulls survives, so the next
	// guess is the lone candidate, again without evaluation.
	require.Equal(t, wordList("lulls"), g.SolutionSpace())
	guess, err = g.ChooseGuess(ctx)
	require.NoError(t, err)
	assert.Equal(t, word.MustParse("lulls"), guess)
}

func TestChooseGuessMaxEntropy(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	secret := word.MustParse("fears")
	words := wordList("aaaaa", "tears", "bears", "pears", "fears", "tbhpf")
	g := NewGame(words, Options{Secret: &secret, OpeningWord: word.MustParse("aaaaa")})

	_, _, err := g.AdvanceSelf(word.MustParse("aaaaa"))
	is.NoErr(err)
	// The space is still {tears, bears, pears, fears}; tbhpf is the
	// only word separating all four, so it has the highest entropy
	// even though it cannot itself be the solution.
	guess, err := g.ChooseGuess(ctx)
	is.NoErr(err)
	is.Equal(guess, word.MustParse("tbhpf"))
}

func TestRandomSecretDeterministic(t *testing.T) {
	is := is.New(t)
	words := wordList("tears", "bears", "pears", "fears", "years")
	a := RandomSecret(words, NewSeededRNG(42))
	b := RandomSecret(words, NewSeededRNG(42))
	is.Equal(a, b)
}
