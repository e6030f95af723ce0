package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/jakobteuber/wordle/word"
)

func TestScore(t *testing.T) {
	is := is.New(t)
	type tc struct {
		guess    string
		solution string
		pattern  string
	}
	cases := []tc{
		{"tears", "bears", "bgggg"},
		{"stear", "tears", "yyyyy"},
		{"atttt", "xaaaa", "ybbbb"},
		{"aattt", "txxxx", "bbybb"},
		// Argument order matters: scoring is not symmetric.
		{"xaaaa", "atttt", "bybbb"},
		{"txxxx", "aattt", "ybbbb"},
		{"tears", "tears", "ggggg"},
		{"aaaaa", "bbbbb", "bbbbb"},
		// The solution has one e; only the first unmatched e in the
		// guess may go yellow.
		{"eexxx", "abcde", "ybbbb"},
		// The solution's lone e is consumed by its green match, so the
		// second guess e cannot also go yellow.
		{"xeexx", "xexxx", "ggbgg"},
	}
	for _, c := range cases {
		got := Score(word.MustParse(c.guess), word.MustParse(c.solution))
		want, err := word.ParsePattern(c.pattern)
		is.NoErr(err)
		if got != want {
			t.Errorf("Score(%v, %v) = %v, want %v", c.guess, c.solution, got, want)
		}
	}
}

func TestScoreSelfIsAllGreen(t *testing.T) {
	is := is.New(t)
	for _, text := range []string{"tears", "abbey", "lulls", "queue"} {
		w := word.MustParse(text)
		is.Equal(Score(w, w), word.AllGreen())
	}
}

func TestScoreNeverOvercountsSolutionLetters(t *testing.T) {
	is := is.New(t)
	// Guess repeats a letter more often than the solution holds it:
	// the non-black marks for that letter must not exceed its count in
	// the solution, and leftmost positions win.
	got := Score(word.MustParse("lllll"), word.MustParse("hello"))
	// Both of hello's l's are consumed by the green matches; every
	// other l stays black.
	want, err := word.ParsePattern("bbggb")
	is.NoErr(err)
	is.Equal(got, want)

	// No greens here; hollo has two l's, so exactly the two guess l's
	// go yellow.
	got = Score(word.MustParse("llxxx"), word.MustParse("hollo"))
	want, err = word.ParsePattern("yybbb")
	is.NoErr(err)
	is.Equal(got, want)
}
