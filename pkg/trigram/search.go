package trigram

import (
	"errors"
	"sort"
)

// ErrEmptyCandidates is returned by BestMatch when no candidates were
// supplied. Callers can tell it apart from a valid zero-score match.
var ErrEmptyCandidates = errors.New("empty candidate set")

// scoreAgainst scores every haystack against a prebuilt needle set, in
// index order. The needle set is shared read-only across workers, which is
// safe because sets are never mutated after Extract.
func (s *Scorer) scoreAgainst(needleSet Set, haystacks []string) []float32 {
	scores := make([]float32, len(haystacks))
	fill := func(start, end int) {
		for i := start; i < end; i++ {
			scores[i] = similarityFromSets(needleSet, Extract(haystacks[i]))
		}
	}
	if len(haystacks) < s.threshold {
		fill(0, len(haystacks))
	} else {
		s.parallel(len(haystacks), fill)
	}
	return scores
}

// better returns the preferred of two matches: strictly higher score wins,
// equal scores keep the lower index. The tie-break is explicit rather than
// inherited from traversal order, so folds over any partition of the input
// produce the same result.
func better(a, b Match) Match {
	if b.Score > a.Score || (b.Score == a.Score && b.Index < a.Index) {
		return b
	}
	return a
}

// BestMatch builds needle's trigram set exactly once, scores it against
// every candidate, and returns the match with the greatest score. Equal
// scores resolve to the lowest index. An empty candidate list is
// ErrEmptyCandidates, never a sentinel score.
func (s *Scorer) BestMatch(needle string, haystacks []string) (Match, error) {
	if len(haystacks) == 0 {
		return Match{}, ErrEmptyCandidates
	}
	scores := s.scoreAgainst(Extract(needle), haystacks)

	best := Match{Index: 0, Score: scores[0]}
	for i := 1; i < len(scores); i++ {
		best = better(best, Match{Index: i, Score: scores[i]})
	}
	return best, nil
}

// ScoreAll scores every candidate against needle and returns those at or
// above minThreshold, sorted by descending score with ascending index
// breaking ties. The index key makes the order total, so sort stability
// doesn't matter.
func (s *Scorer) ScoreAll(needle string, haystacks []string, minThreshold float32) []Match {
	scores := s.scoreAgainst(Extract(needle), haystacks)

	matches := make([]Match, 0, len(scores))
	for i, score := range scores {
		if score >= minThreshold {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})
	return matches
}
