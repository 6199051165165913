package trigram

import (
	"runtime"
	"sync"
)

// DefaultParallelThreshold is the input size at which batch and search
// operations switch from a single goroutine to a worker fan-out. Below it
// the coordination overhead costs more than the parallelism buys. The
// threshold never changes output values, only how they are computed.
const DefaultParallelThreshold = 250

// Pair is one (A, B) string pair in a batch job.
type Pair struct {
	A string
	B string
}

// Match is a candidate index together with its similarity score.
type Match struct {
	Index int
	Score float32
}

// Scorer runs batch and search operations with a fixed parallel threshold
// and worker count. A Scorer is stateless between calls and safe for
// concurrent use.
type Scorer struct {
	threshold int
	workers   int
}

// NewScorer returns a Scorer. A threshold <= 0 selects
// DefaultParallelThreshold; workers <= 0 selects runtime.NumCPU().
func NewScorer(parallelThreshold, workers int) *Scorer {
	if parallelThreshold <= 0 {
		parallelThreshold = DefaultParallelThreshold
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scorer{threshold: parallelThreshold, workers: workers}
}

var defaultScorer = NewScorer(0, 0)

// SimilarityBatch scores pairs with a default Scorer.
func SimilarityBatch(pairs []Pair) []float32 {
	return defaultScorer.SimilarityBatch(pairs)
}

// BestMatch finds the best candidate for needle with a default Scorer.
func BestMatch(needle string, haystacks []string) (Match, error) {
	return defaultScorer.BestMatch(needle, haystacks)
}

// ScoreAll ranks candidates for needle with a default Scorer.
func ScoreAll(needle string, haystacks []string, minThreshold float32) []Match {
	return defaultScorer.ScoreAll(needle, haystacks, minThreshold)
}

// parallel splits n items into contiguous chunks, one goroutine per chunk.
// Chunks never overlap, so fn may write to per-index slots without locking.
func (s *Scorer) parallel(n int, fn func(start, end int)) {
	chunk := (n + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
