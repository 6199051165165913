/*
Package trigram scores string similarity the way PostgreSQL's pg_trgm
extension does, so results can be compared or merged with scores the
database computed itself.

A string is normalized (lowercased, with any combining dot above removed),
split into word runs of letters and digits, and each run is padded with two
leading and one trailing space before every 3-character window is encoded
into a compact 3-byte key. Similarity between two strings is the Jaccard
index of their key sets:

	score := trigram.Similarity("hello", "hallo")

Batch and search operations fan out across goroutines once the input is
large enough to pay for the coordination, and are guaranteed to return the
same values as the sequential path:

	scorer := trigram.NewScorer(0, 0) // defaults
	best, err := scorer.BestMatch("amenity", candidates)
	ranked := scorer.ScoreAll("amenity", candidates, 0.3)

Compatibility notes: multi-byte windows are compressed through PostgreSQL's
legacy CRC32, which is not the IEEE CRC32 from hash/crc32. Keys produced by
the raw-byte path and the checksum path can collide; pg_trgm accepts the
same collisions, so this package preserves them.
*/
package trigram
