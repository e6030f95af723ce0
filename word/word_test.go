package word

import (
	"errors"
	"testing"
)

type parsetestpair struct {
	text    string
	want    string
	wantErr error
}

func TestParse(t *testing.T) {
	var parseTests = []parsetestpair{
		{"tears", "tears", nil},
		{"  tears\n", "tears", nil},
		{"TEARS", "tears", nil},
		{"tear", "", ErrWordLength},
		{"tearss", "", ErrWordLength},
		{"", "", ErrWordLength},
		{"te4rs", "", ErrWordChar},
		{"te rs", "", ErrWordChar},
		{"te-rs", "", ErrWordChar},
	}

	for _, pair := range parseTests {
		w, err := Parse(pair.text)
		if pair.wantErr != nil {
			if !errors.Is(err, pair.wantErr) {
				t.Error("For", pair.text, "expected error", pair.wantErr, "got", err)
			}
			continue
		}
		if err != nil {
			t.Error("For", pair.text, "unexpected error", err)
		} else if w.String() != pair.want {
			t.Error("For", pair.text, "expected", pair.want, "got", w.String())
		}
	}
}

func TestWordValueSemantics(t *testing.T) {
	a := MustParse("tears")
	b := a
	b[0] = 'b'
	if a.String() != "tears" {
		t.Error("copying a word must not share state, got", a.String())
	}
	if a == MustParse("bears") {
		t.Error("tears and bears must compare unequal")
	}
	if b != MustParse("bears") {
		t.Error("expected bears, got", b.String())
	}
}
