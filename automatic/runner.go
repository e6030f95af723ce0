// Package automatic replays the solver over whole solution corpora.
// Allow many self-played games in parallel, collect round statistics.
package automatic

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jakobteuber/wordle/game"
	"github.com/jakobteuber/wordle/word"
)

// A GameResult is the outcome of one simulated game: the guesses made
// and the terminating round. Rounds is MaxRounds+1 when the budget ran
// out (or when the solution was missing from the master list, which
// empties the space).
type GameResult struct {
	Solution word.Word
	Guesses  []word.Word
	Rounds   int
	Playing  game.Playing
}

func (gr GameResult) Won() bool {
	return gr.Playing == game.Won
}

// LogGame is a struct meant for serializing one game to a log stream,
// for debug and analysis purposes.
type LogGame struct {
	Solution string   `json:"solution" yaml:"solution"`
	Guesses  []string `json:"guesses" yaml:"guesses,flow"`
	Rounds   int      `json:"rounds" yaml:"rounds"`
	Result   string   `json:"result" yaml:"result"`
}

// GameRunner is the master struct for the batch simulation logic. One
// runner drives many independent games; the only thing they share is
// the immutable master word list.
type GameRunner struct {
	words     []word.Word
	opening   word.Word
	maxRounds int
	threads   int

	logStream io.Writer
}

// Option configures a GameRunner.
type Option func(*GameRunner)

// WithOpeningWord overrides the fixed round-1 guess.
func WithOpeningWord(w word.Word) Option {
	return func(r *GameRunner) { r.opening = w }
}

// WithMaxRounds overrides the round budget.
func WithMaxRounds(n int) Option {
	return func(r *GameRunner) { r.maxRounds = n }
}

// WithThreads sets the number of games played concurrently.
func WithThreads(n int) Option {
	return func(r *GameRunner) { r.threads = max(1, n) }
}

// WithLogStream turns on the per-game YAML log.
func WithLogStream(w io.Writer) Option {
	return func(r *GameRunner) { r.logStream = w }
}

// NewGameRunner just instantiates and initializes a game runner.
func NewGameRunner(words []word.Word, opts ...Option) *GameRunner {
	r := &GameRunner{
		words:     words,
		opening:   game.DefaultOpeningWord,
		maxRounds: game.DefaultMaxRounds,
		threads:   max(1, runtime.NumCPU()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SimulateGame plays a single self-played game to completion against a
// known solution and reports its guess sequence and terminating round.
func (r *GameRunner) SimulateGame(ctx context.Context, solution word.Word) (GameResult, error) {
	g := game.NewGame(r.words, game.Options{
		MaxRounds:   r.maxRounds,
		OpeningWord: r.opening,
		Secret:      &solution,
		// Entropy evaluation stays single-threaded here; the batch
		// parallelism is across games, not within one.
		Threads: 1,
	})

	result := GameResult{Solution: solution}
	for g.Playing() == game.InProgress {
		guess, err := g.ChooseGuess(ctx)
		if err != nil {
			return result, err
		}
		if _, _, err := g.AdvanceSelf(guess); err != nil {
			return result, err
		}
		result.Guesses = append(result.Guesses, guess)
	}

	result.Playing = g.Playing()
	if result.Won() {
		result.Rounds = g.Round()
	} else {
		// Rounds-exhausted sentinel. A LostEmpty here means the
		// solution was not in the master list at all.
		result.Rounds = r.maxRounds + 1
		if result.Playing == game.LostEmpty {
			log.Warn().Str("solution", solution.String()).
				Msg("solution not reachable from master list")
		}
	}
	return result, nil
}

// Run simulates one game per solution, spread over the runner's thread
// count, and streams one CSV line per finished game to csvOut (pass nil
// to skip it). Games are independent; each worker owns its games'
// state outright and only reads the shared word list.
func (r *GameRunner) Run(ctx context.Context, solutions []word.Word, csvOut io.Writer) (*Summary, error) {
	log.Debug().Int("games", len(solutions)).Int("threads", r.threads).
		Msg("starting batch run")

	jobs := make(chan word.Word, len(solutions))
	results := make(chan GameResult, len(solutions))
	logChan := make(chan []byte, 100)
	gameLogChan := make(chan []byte, 100)

	// A single writer goroutine per stream; workers never touch the
	// output writers directly. After a write error the writer keeps
	// draining its channel until close, so workers can never block on
	// a full buffer while the pool shuts down.
	writer := errgroup.Group{}
	writer.Go(func() error {
		var werr error
		for msg := range logChan {
			if csvOut == nil || werr != nil {
				continue
			}
			if _, err := csvOut.Write(msg); err != nil {
				werr = err
			}
		}
		return werr
	})
	writer.Go(func() error {
		var werr error
		for msg := range gameLogChan {
			if r.logStream == nil || werr != nil {
				continue
			}
			if _, err := r.logStream.Write(msg); err != nil {
				werr = err
			}
		}
		return werr
	})

	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < r.threads; t++ {
		g.Go(func() error {
			for solution := range jobs {
				res, err := r.SimulateGame(ctx, solution)
				if err != nil {
					return err
				}
				logChan <- []byte(csvLine(res))
				if r.logStream != nil {
					out, err := marshalGameLog(res)
					if err != nil {
						return err
					}
					gameLogChan <- out
				}
				results <- res
			}
			return nil
		})
	}

feeder:
	for _, solution := range solutions {
		select {
		case <-ctx.Done():
			log.Info().Msg("got stop signal, not queueing more games...")
			break feeder
		default:
			jobs <- solution
		}
	}
	close(jobs)

	err := g.Wait()
	close(results)
	close(logChan)
	close(gameLogChan)
	if werr := writer.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}

	summary := newSummary(r.maxRounds)
	for res := range results {
		summary.add(res)
	}
	log.Info().Int("games", summary.Games).
		Float64("mean-rounds", summary.Rounds.Mean()).
		Float64("win-ratio", summary.WinRatio()).
		Msg("batch run finished")
	return summary, nil
}

func csvLine(res GameResult) string {
	guesses := lo.Map(res.Guesses, func(w word.Word, _ int) string {
		return w.String()
	})
	return fmt.Sprintf("%v,%v,%v,%v\n",
		res.Solution, res.Rounds, res.Playing,
		strings.Join(guesses, " "))
}

// CSVHeader matches the lines csvLine produces.
const CSVHeader = "solution,rounds,result,guesses\n"

func marshalGameLog(res GameResult) ([]byte, error) {
	entry := LogGame{
		Solution: res.Solution.String(),
		Guesses: lo.Map(res.Guesses, func(w word.Word, _ int) string {
			return w.String()
		}),
		Rounds: res.Rounds,
		Result: res.Playing.String(),
	}
	return yaml.Marshal([]LogGame{entry})
}
