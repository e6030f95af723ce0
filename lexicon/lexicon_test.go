package lexicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/jakobteuber/wordle/word"
)

func TestLoad(t *testing.T) {
	is := is.New(t)
	input := "tears\nbears\n\n# a comment\npears\n"
	words, err := Load(strings.NewReader(input))
	is.NoErr(err)
	is.Equal(len(words), 3)
	is.Equal(words[0], word.MustParse("tears"))
	is.Equal(words[2], word.MustParse("pears"))
}

func TestLoadMalformedLine(t *testing.T) {
	is := is.New(t)
	_, err := Load(strings.NewReader("tears\nbear\n"))
	is.True(errors.Is(err, word.ErrWordLength))
	is.True(strings.Contains(err.Error(), "line 2"))
}

func TestLoadEmpty(t *testing.T) {
	is := is.New(t)
	_, err := Load(strings.NewReader("# only comments\n\n"))
	is.True(err != nil)
}
