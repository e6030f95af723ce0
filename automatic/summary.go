package automatic

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/jakobteuber/wordle/stats"
)

// A Summary aggregates a whole batch run.
type Summary struct {
	Games  int
	Wins   int
	Rounds stats.Statistic
	// RoundCounts[r] is the number of games that ended on round r;
	// the last bucket (maxRounds+1) holds the failed games.
	RoundCounts []int

	roundSamples []float64
}

func newSummary(maxRounds int) *Summary {
	return &Summary{RoundCounts: make([]int, maxRounds+2)}
}

func (s *Summary) add(res GameResult) {
	s.Games++
	if res.Won() {
		s.Wins++
	}
	s.Rounds.Push(float64(res.Rounds))
	s.roundSamples = append(s.roundSamples, float64(res.Rounds))
	if res.Rounds < len(s.RoundCounts) {
		s.RoundCounts[res.Rounds]++
	}
}

func (s *Summary) WinRatio() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Fprint writes the human-readable batch report: headline numbers plus
// a histogram of terminating rounds.
func (s *Summary) Fprint(w io.Writer) error {
	fmt.Fprintf(w, "games: %d  wins: %d (%.1f%%)\n", s.Games, s.Wins, 100*s.WinRatio())
	fmt.Fprintf(w, "rounds: mean %.3f ± %.3f  stdev %.3f  min %v  max %v\n",
		s.Rounds.Mean(), s.Rounds.StandardError(), s.Rounds.Stdev(),
		s.Rounds.Min(), s.Rounds.Max())
	if len(s.roundSamples) == 0 {
		return nil
	}
	hist := histogram.Hist(len(s.RoundCounts)-1, s.roundSamples)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
