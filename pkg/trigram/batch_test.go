package trigram

import (
	"fmt"
	"math"
	"testing"
)

func makePairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{
			A: fmt.Sprintf("needle %d with some text", i),
			B: fmt.Sprintf("needle %d with same text", i%7),
		}
	}
	return pairs
}

func TestSimilarityBatchMatchesSingle(t *testing.T) {
	pairs := []Pair{
		{"hello", "world"},
		{"foo", "bar"},
		{"test", "testing"},
		{"", ""},
		{"İstanbul", "istanbul"},
	}
	scores := SimilarityBatch(pairs)
	if len(scores) != len(pairs) {
		t.Fatalf("Expected %d scores, got %d", len(pairs), len(scores))
	}
	for i, p := range pairs {
		if want := Similarity(p.A, p.B); scores[i] != want {
			t.Errorf("Batch score at %d = %v, single call = %v", i, scores[i], want)
		}
	}
}

// the crossover threshold is a cost heuristic and must never change values:
// force one scorer down each path and compare element for element
func TestSimilarityBatchSequentialParallelEquivalence(t *testing.T) {
	sequential := NewScorer(math.MaxInt, 4)
	parallel := NewScorer(1, 4)

	for _, n := range []int{1, 7, 249, 250, 600} {
		pairs := makePairs(n)
		seqScores := sequential.SimilarityBatch(pairs)
		parScores := parallel.SimilarityBatch(pairs)
		for i := range seqScores {
			if seqScores[i] != parScores[i] {
				t.Errorf("n=%d index %d: sequential %v != parallel %v", n, i, seqScores[i], parScores[i])
			}
		}
	}
}

func TestSimilarityBatchEmpty(t *testing.T) {
	if scores := SimilarityBatch(nil); len(scores) != 0 {
		t.Errorf("Empty batch should return empty scores, got %d", len(scores))
	}
}

// worker counts must not leak into results
func TestSimilarityBatchWorkerCountInvariance(t *testing.T) {
	pairs := makePairs(300)
	baseline := NewScorer(1, 1).SimilarityBatch(pairs)
	for _, workers := range []int{2, 3, 8, 32} {
		scores := NewScorer(1, workers).SimilarityBatch(pairs)
		for i := range baseline {
			if scores[i] != baseline[i] {
				t.Errorf("workers=%d index %d: %v != %v", workers, i, scores[i], baseline[i])
			}
		}
	}
}

func BenchmarkSimilarityBatchSequential(b *testing.B) {
	pairs := makePairs(200)
	s := NewScorer(math.MaxInt, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SimilarityBatch(pairs)
	}
}

func BenchmarkSimilarityBatchParallel(b *testing.B) {
	pairs := makePairs(2000)
	s := NewScorer(1, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SimilarityBatch(pairs)
	}
}
