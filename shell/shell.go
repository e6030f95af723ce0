// Package shell implements the interactive front end: the assist mode
// that advises a human playing Wordle elsewhere, and the play mode
// where the human guesses against a secret this program picked. All
// terminal rendering lives here; the engine packages never print.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jakobteuber/wordle/game"
	"github.com/jakobteuber/wordle/solver"
	"github.com/jakobteuber/wordle/word"
)

// how many solution-space members and suggestions to show per round.
const displayLimit = 5

type ShellController struct {
	l   *readline.Instance
	cfg ControllerOptions
}

// ControllerOptions carries the knobs the shell games need.
type ControllerOptions struct {
	MaxRounds   int
	OpeningWord word.Word
	Threads     int
	Seed        uint64
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg ControllerOptions) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordle>\033[0m ",
		HistoryFile:     "/tmp/wordle_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) Close() error {
	return sc.l.Close()
}

// readWord keeps prompting until the line parses as a word. EOF and
// interrupts abort the game.
func (sc *ShellController) readWord(prompt string) (word.Word, error) {
	for {
		sc.l.SetPrompt(prompt)
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return word.Word{}, io.EOF
		} else if err != nil {
			return word.Word{}, err
		}
		w, err := word.Parse(line)
		if err != nil {
			showMessage(err.Error(), sc.l.Stderr())
			continue
		}
		return w, nil
	}
}

func (sc *ShellController) readPattern(prompt string) (word.Pattern, error) {
	for {
		sc.l.SetPrompt(prompt)
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return 0, io.EOF
		} else if err != nil {
			return 0, err
		}
		p, err := word.ParsePattern(line)
		if err != nil {
			showMessage(err.Error(), sc.l.Stderr())
			continue
		}
		return p, nil
	}
}

func showWords(name string, words []word.Word, w io.Writer) {
	head := lo.Map(lo.Slice(words, 0, displayLimit), func(wd word.Word, _ int) string {
		return wd.String()
	})
	suffix := ""
	if len(words) > displayLimit {
		suffix = ", ..."
	}
	showMessage(fmt.Sprintf("\033[1m%s (%d entries):\033[0m %s%s",
		name, len(words), strings.Join(head, ", "), suffix), w)
}

func showEvals(name string, evals []solver.Evaluation, w io.Writer) {
	head := lo.Map(lo.Slice(evals, 0, displayLimit), func(e solver.Evaluation, _ int) string {
		return e.String()
	})
	suffix := ""
	if len(evals) > displayLimit {
		suffix = ", ..."
	}
	showMessage(fmt.Sprintf("\033[1m%s (%d entries):\033[0m %s%s",
		name, len(evals), strings.Join(head, ", "), suffix), w)
}

// Assist runs the advisory loop: show the remaining solution space and
// the best guesses, then ask what was guessed and what feedback the
// real game gave back.
func (sc *ShellController) Assist(ctx context.Context, words []word.Word) error {
	g := game.NewGame(words, game.Options{
		MaxRounds:   sc.cfg.MaxRounds,
		OpeningWord: sc.cfg.OpeningWord,
		Threads:     sc.cfg.Threads,
	})
	out := sc.l.Stdout()

	for g.Playing() == game.InProgress {
		showMessage(fmt.Sprintf("\033[1mRound %d of %d\033[0m",
			g.Round()+1, g.MaxRounds()), out)
		showWords("Solution space", g.SolutionSpace(), out)
		evals, err := g.EvaluateAll(ctx)
		if err != nil {
			return err
		}
		showEvals("Suggested guesses", evals, out)

		guess, err := sc.readWord("\033[1mEnter guessed word:\033[0m ")
		if err != nil {
			return sc.aborted(err)
		}
		observed, err := sc.readPattern("\033[1mEnter resulting pattern (b/y/g):\033[0m ")
		if err != nil {
			return sc.aborted(err)
		}
		showMessage(fmt.Sprintf("You guessed \033[1m%v\033[0m with result %s",
			guess, observed.Display()), out)
		if _, err := g.Advance(guess, observed); err != nil {
			return err
		}
	}

	switch g.Playing() {
	case game.Won:
		showMessage(fmt.Sprintf("\033[1mSuccess!\033[0m   The word is %v.",
			g.SolutionSpace()[0]), out)
	case game.LostEmpty:
		showMessage("\033[1mFailure!\033[0m   No fitting word in the list; "+
			"some feedback must have been wrong.", out)
	case game.LostExhausted:
		showMessage("\033[1mFailure!\033[0m   Rounds exhausted!", out)
	}
	showMessage(fmt.Sprintf("Score %d", g.Round()), out)
	return nil
}

// Play runs a normal game of Wordle with the program holding the
// secret.
func (sc *ShellController) Play(ctx context.Context, words []word.Word) error {
	secret := game.RandomSecret(words, game.NewSeededRNG(sc.cfg.Seed))
	log.Debug().Str("secret", secret.String()).Msg("picked secret")
	g := game.NewGame(words, game.Options{
		MaxRounds:   sc.cfg.MaxRounds,
		OpeningWord: sc.cfg.OpeningWord,
		Secret:      &secret,
		Threads:     sc.cfg.Threads,
	})
	out := sc.l.Stdout()

	for g.Playing() == game.InProgress {
		showMessage(fmt.Sprintf("\033[1mRound %d of %d\033[0m",
			g.Round()+1, g.MaxRounds()), out)
		guess, err := sc.readWord("\033[1mGuess a word:\033[0m ")
		if err != nil {
			return sc.aborted(err)
		}
		observed, _, err := g.AdvanceSelf(guess)
		if err != nil {
			return err
		}
		showMessage(fmt.Sprintf("→ %s", observed.Display()), out)
	}

	switch g.Playing() {
	case game.Won:
		showMessage(fmt.Sprintf("\033[1mSuccess!\033[0m   The word was %v.", secret), out)
	default:
		showMessage("\033[1mFailure!\033[0m   Rounds exhausted!", out)
		showMessage(fmt.Sprintf("\033[1mThe word was %v.\033[0m", secret), out)
	}
	showMessage(fmt.Sprintf("Score %d", g.Round()), out)
	return nil
}

func (sc *ShellController) aborted(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug().Msg("input closed, leaving game")
		return nil
	}
	return err
}
