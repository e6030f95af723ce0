// Package game owns the round-by-round state of one Wordle game: the
// shrinking solution space, the round counter, and the terminal
// conditions. The interactive shell and the batch runner drive it in
// different ways but share all of its logic.
package game

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/jakobteuber/wordle/solver"
	"github.com/jakobteuber/wordle/word"
)

// DefaultMaxRounds is the standard Wordle round budget.
const DefaultMaxRounds = 6

// DefaultOpeningWord is the fixed first guess used by the automated
// modes. Computing it every game would mean re-ranking the entire word
// list against the full, unconstrained space each time, for the same
// answer.
var DefaultOpeningWord = word.Word{'t', 'e', 'a', 'r', 's'}

// Playing describes where a game stands. The three non-InProgress
// values are terminal.
type Playing int

const (
	InProgress Playing = iota
	// Won: the solution was found (assisted games: the space shrank
	// to one word; games with a known secret: the guess hit it).
	Won
	// LostEmpty: no word in the master list is consistent with the
	// feedback supplied so far. Not an internal error; it means some
	// earlier feedback was wrong.
	LostEmpty
	// LostExhausted: the round budget ran out.
	LostExhausted
)

func (p Playing) String() string {
	switch p {
	case Won:
		return "won"
	case LostEmpty:
		return "lost-empty"
	case LostExhausted:
		return "lost-rounds-exhausted"
	default:
		return "in-progress"
	}
}

var ErrGameOver = errors.New("game is over")

// Options configures a new game.
type Options struct {
	// MaxRounds defaults to DefaultMaxRounds when zero.
	MaxRounds int
	// OpeningWord defaults to DefaultOpeningWord when zero.
	OpeningWord word.Word
	// Secret, when set, makes this a self-play/simulation game: Won
	// triggers on guessing the secret rather than on a singleton
	// space.
	Secret *word.Word
	// Threads bounds the entropy evaluation parallelism; zero means
	// one goroutine per CPU.
	Threads int
}

// A Game holds the state for a single Wordle game. The master word
// list is shared and read-only; the solution space and round counter
// belong to this game alone, so concurrent games must not share a
// Game value.
type Game struct {
	words     []word.Word
	space     []word.Word
	round     int
	maxRounds int
	opening   word.Word
	secret    *word.Word
	evaluator *solver.Evaluator
	playing   Playing
}

// NewGame starts a game whose solution space is the full master list.
func NewGame(words []word.Word, opts Options) *Game {
	g := &Game{
		words:     words,
		space:     words,
		maxRounds: opts.MaxRounds,
		opening:   opts.OpeningWord,
		secret:    opts.Secret,
		evaluator: solver.NewEvaluator(),
	}
	if g.maxRounds == 0 {
		g.maxRounds = DefaultMaxRounds
	}
	if g.opening == (word.Word{}) {
		g.opening = DefaultOpeningWord
	}
	if opts.Threads > 0 {
		g.evaluator.SetThreads(opts.Threads)
	}
	return g
}

// RandomSecret picks a secret uniformly from the master list using the
// given generator, so self-play outcomes are reproducible from a seed.
func RandomSecret(words []word.Word, rng *rand.Rand) word.Word {
	return words[rng.IntN(len(words))]
}

// NewSeededRNG builds the generator RandomSecret expects. A zero seed
// asks for a fresh unpredictable one.
func NewSeededRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (g *Game) Round() int { return g.round }

func (g *Game) MaxRounds() int { return g.maxRounds }

func (g *Game) Playing() Playing { return g.playing }

// SolutionSpace is the set of words still consistent with every
// observation so far. Callers must treat it as read-only.
func (g *Game) SolutionSpace() []word.Word {
	return g.space
}

// EvaluateAll ranks every master-list word by expected information
// gain against the current solution space, best first.
func (g *Game) EvaluateAll(ctx context.Context) ([]solver.Evaluation, error) {
	return g.evaluator.EvaluateAll(ctx, g.words, g.space)
}

// ChooseGuess picks the engine's own guess for the upcoming round:
// the opening word on round 1, the lone survivor when the space is
// down to one candidate, and otherwise the maximum-entropy word from
// the full master list. Ties fall to evaluation order.
func (g *Game) ChooseGuess(ctx context.Context) (word.Word, error) {
	if g.round == 0 {
		return g.opening, nil
	}
	if len(g.space) == 1 {
		return g.space[0], nil
	}
	evals, err := g.EvaluateAll(ctx)
	if err != nil {
		return word.Word{}, err
	}
	return evals[0].Word, nil
}

// Advance plays one round: it counts the round, narrows the solution
// space with the observed feedback, and settles the game state,
// checking Won, then LostEmpty, then LostExhausted. For assisted games
// the feedback comes from the outside world; self-play callers should
// use AdvanceSelf instead.
func (g *Game) Advance(guess word.Word, observed word.Pattern) (Playing, error) {
	if g.playing != InProgress {
		return g.playing, ErrGameOver
	}
	g.round++
	g.space = solver.Filter(g.space, guess, observed)
	log.Debug().Int("round", g.round).
		Str("guess", guess.String()).
		Str("observed", observed.String()).
		Int("space", len(g.space)).
		Msg("advance")

	switch {
	case g.won(guess):
		g.playing = Won
	case len(g.space) == 0:
		g.playing = LostEmpty
	case g.round > g.maxRounds:
		g.playing = LostExhausted
	}
	return g.playing, nil
}

// AdvanceSelf scores the guess against the known secret and advances
// with the resulting true feedback.
func (g *Game) AdvanceSelf(guess word.Word) (word.Pattern, Playing, error) {
	if g.secret == nil {
		return 0, g.playing, errors.New("game has no secret to score against")
	}
	observed := solver.Score(guess, *g.secret)
	playing, err := g.Advance(guess, observed)
	return observed, playing, err
}

func (g *Game) won(guess word.Word) bool {
	if g.secret != nil {
		return guess == *g.secret
	}
	return len(g.space) == 1
}
