package trigram

// Similarity returns the Jaccard similarity of the trigram sets of a and b:
// |A∩B| / |A∪B|, always in [0, 1]. Two strings with no word characters
// score 0, not NaN.
func Similarity(a, b string) float32 {
	return similarityFromSets(Extract(a), Extract(b))
}

// similarityFromSets computes the Jaccard index of two prebuilt sets. The
// division happens in float64 so large sets don't accumulate rounding bias
// before the result narrows to float32.
func similarityFromSets(a, b Set) float32 {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}

	shared := 0
	for t := range small {
		if large.Contains(t) {
			shared++
		}
	}

	total := float64(len(a) + len(b) - shared)
	if total == 0 {
		return 0
	}
	return float32(float64(shared) / total)
}
