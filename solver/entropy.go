package solver

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jakobteuber/wordle/word"
)

// Entropy returns the Shannon entropy, in bits, of the feedback
// distribution that guessing w would produce over the given solution
// space, assuming the true solution is uniformly distributed over it.
// This is the expected number of bits the guess reveals; it is always
// in [0, log2(len(space))].
func Entropy(w word.Word, space []word.Word) float64 {
	var histogram [word.NumPatterns]uint32
	for _, solution := range space {
		histogram[Score(w, solution).Index()]++
	}

	n := float64(len(space))
	entropy := 0.0
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// An Evaluation pairs a candidate guess with its entropy against the
// solution space of one particular round. Evaluations are recomputed
// from scratch every round; the space they were measured against has
// usually shrunk by the next one.
type Evaluation struct {
	Word    word.Word
	Entropy float64
}

func (e Evaluation) String() string {
	return fmt.Sprintf("%v (%.3f)", e.Word, e.Entropy)
}

// An Evaluator ranks every word in a master list against a solution
// space. The per-word computations are independent, so it fans them
// out over a configurable number of threads.
type Evaluator struct {
	threads int
}

func NewEvaluator() *Evaluator {
	return &Evaluator{threads: max(1, runtime.NumCPU())}
}

func (e *Evaluator) SetThreads(threads int) {
	e.threads = max(1, threads)
}

func (e *Evaluator) Threads() int {
	return e.threads
}

// EvaluateAll computes the entropy of every candidate word against the
// current solution space and returns the evaluations sorted by
// descending entropy. The sort is stable, so ties keep master-list
// order. Candidates are split into contiguous chunks, one errgroup
// goroutine per thread; each goroutine writes only its own region of
// the result slice, and the space is shared read-only.
func (e *Evaluator) EvaluateAll(ctx context.Context, words, space []word.Word) ([]Evaluation, error) {
	evals := make([]Evaluation, len(words))

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(words) + e.threads - 1) / e.threads
	for t := 0; t < e.threads; t++ {
		lo := t * chunk
		hi := min(lo+chunk, len(words))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				evals[i] = Evaluation{Word: words[i], Entropy: Entropy(words[i], space)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug().Err(err).Msg("evaluate-all-canceled")
		return nil, err
	}

	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].Entropy > evals[j].Entropy
	})
	return evals, nil
}
