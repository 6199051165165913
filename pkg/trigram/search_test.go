package trigram

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestBestMatchEmptyCandidates(t *testing.T) {
	_, err := BestMatch("needle", nil)
	if !errors.Is(err, ErrEmptyCandidates) {
		t.Errorf("Expected ErrEmptyCandidates, got %v", err)
	}
}

func TestBestMatchFindsExact(t *testing.T) {
	haystacks := []string{"world", "help", "hello", "yellow"}
	match, err := BestMatch("hello", haystacks)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if match.Index != 2 {
		t.Errorf("Expected index 2 (%q), got %d", haystacks[2], match.Index)
	}
	if match.Score != 1.0 {
		t.Errorf("Expected score 1.0 for exact match, got %v", match.Score)
	}
}

// equal maximal scores must resolve to the lowest index, on both paths
func TestBestMatchTieBreak(t *testing.T) {
	haystacks := []string{"zzz", "hello", "hello", "hello", "yyy"}
	for _, s := range []*Scorer{NewScorer(math.MaxInt, 4), NewScorer(1, 4)} {
		match, err := s.BestMatch("hello", haystacks)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if match.Index != 1 {
			t.Errorf("Expected lowest tied index 1, got %d", match.Index)
		}
	}
}

// a valid zero-score match is still a match, distinct from the empty error
func TestBestMatchAllZero(t *testing.T) {
	match, err := BestMatch("hello", []string{"привет", "мир"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if match.Index != 0 || match.Score != 0.0 {
		t.Errorf("Expected (0, 0.0), got (%d, %v)", match.Index, match.Score)
	}
}

func TestScoreAllOrderingAndThreshold(t *testing.T) {
	haystacks := []string{"hello", "world", "hell", "hello", "help", "完全に違う"}
	min := float32(0.1)
	matches := ScoreAll("hello", haystacks, min)

	for i, m := range matches {
		if m.Score < min {
			t.Errorf("Match %d has score %v below threshold %v", i, m.Score, min)
		}
		if i > 0 {
			prev := matches[i-1]
			if m.Score > prev.Score {
				t.Errorf("Scores not descending at %d: %v after %v", i, m.Score, prev.Score)
			}
			if m.Score == prev.Score && m.Index < prev.Index {
				t.Errorf("Tied scores not in ascending index order at %d", i)
			}
		}
	}

	// exact duplicates at indexes 0 and 3 both score 1.0 and keep that order
	if len(matches) < 2 || matches[0].Index != 0 || matches[1].Index != 3 {
		t.Errorf("Expected tied exact matches (0, 3) first, got %v", matches)
	}

	// everything below threshold is absent
	for _, m := range matches {
		if haystacks[m.Index] == "完全に違う" {
			t.Errorf("Candidate below threshold leaked into results")
		}
	}
}

func TestScoreAllEmpty(t *testing.T) {
	if matches := ScoreAll("hello", nil, 0); len(matches) != 0 {
		t.Errorf("Empty candidates should return no matches, got %d", len(matches))
	}
	// a threshold of zero keeps even zero scores
	matches := ScoreAll("hello", []string{"привет"}, 0)
	if len(matches) != 1 || matches[0].Score != 0.0 {
		t.Errorf("Threshold 0.0 should keep zero-score matches, got %v", matches)
	}
}

func TestScoreAllSequentialParallelEquivalence(t *testing.T) {
	haystacks := make([]string, 400)
	for i := range haystacks {
		haystacks[i] = fmt.Sprintf("candidate number %d", i%13)
	}
	seq := NewScorer(math.MaxInt, 4).ScoreAll("candidate number 5", haystacks, 0.2)
	par := NewScorer(1, 4).ScoreAll("candidate number 5", haystacks, 0.2)

	if len(seq) != len(par) {
		t.Fatalf("Result lengths differ: %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Errorf("Index %d: sequential %v != parallel %v", i, seq[i], par[i])
		}
	}
}

func BenchmarkBestMatch(b *testing.B) {
	haystacks := make([]string, 1000)
	for i := range haystacks {
		haystacks[i] = fmt.Sprintf("word%d", i)
	}
	s := NewScorer(0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.BestMatch("word500", haystacks); err != nil {
			b.Fatal(err)
		}
	}
}
