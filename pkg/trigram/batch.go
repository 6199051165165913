package trigram

// SimilarityBatch scores every pair independently and returns the scores in
// input order. Batches below the parallel threshold run strictly
// sequentially; larger ones fan out, with each worker filling only its own
// index range. Both paths run the exact same per-pair computation, so the
// output is identical either way.
func (s *Scorer) SimilarityBatch(pairs []Pair) []float32 {
	scores := make([]float32, len(pairs))
	fill := func(start, end int) {
		for i := start; i < end; i++ {
			scores[i] = Similarity(pairs[i].A, pairs[i].B)
		}
	}
	if len(pairs) < s.threshold {
		fill(0, len(pairs))
	} else {
		s.parallel(len(pairs), fill)
	}
	return scores
}
