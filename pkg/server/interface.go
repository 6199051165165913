/*
Package server implements msgpack IPC for trigram similarity services.

The server provides a minimal interface for similarity scoring using msgpack
serialization over stdin/stdout. Messages are processed synchronously with
timing info included in responses.

# IPC

Clients send one msgpack-encoded Request per message and receive one
response. Each request carries an ID, an op code, and the fields that op
reads.

Score one pair:

	{"id": "req_001", "op": "sim", "a": "hello", "b": "hallo"}
	{"id": "req_001", "score": 0.33, "t": 41}

Score a batch of pairs (order of scores matches order of pairs):

	{"id": "req_002", "op": "batch", "pairs": [["foo", "bar"], ["a", "b"]]}
	{"id": "req_002", "scores": [0.0, 0.0], "c": 2, "t": 120}

Find the best candidate, or rank all candidates above a threshold:

	{"id": "req_003", "op": "best", "n": "amenity", "h": ["america", "amenity"]}
	{"id": "req_003", "m": {"i": 1, "s": 1.0}, "t": 87}

	{"id": "req_004", "op": "rank", "n": "amenity", "h": [...], "min": 0.3}
	{"id": "req_004", "m": [{"i": 1, "s": 1.0}, {"i": 0, "s": 0.45}], "c": 2, "t": 95}

"best" with an empty candidate list answers a structured error, never a
sentinel score:

	{"id": "req_005", "error": "empty candidate set", "status": 400}

A "health" op answers {"id": ..., "status": "ok"}.

Request size limits (batch length, candidate count, text length) come from
the [server] config section; requests over a limit get a status 400 error
response and the loop keeps running.
*/
package server

// Request is one incoming IPC message. Op selects which fields matter.
type Request struct {
	ID string `msgpack:"id"`
	Op string `msgpack:"op"`

	// op "sim"
	A string `msgpack:"a,omitempty"`
	B string `msgpack:"b,omitempty"`

	// op "batch"
	Pairs [][2]string `msgpack:"pairs,omitempty"`

	// ops "best" and "rank"
	Needle    string   `msgpack:"n,omitempty"`
	Haystacks []string `msgpack:"h,omitempty"`

	// op "rank" only
	Min   float32 `msgpack:"min,omitempty"`
	Limit int     `msgpack:"l,omitempty"`
}

// SimilarityResponse answers op "sim".
type SimilarityResponse struct {
	ID        string  `msgpack:"id"`
	Score     float32 `msgpack:"score"`
	TimeTaken int64   `msgpack:"t"`
}

// BatchResponse answers op "batch".
type BatchResponse struct {
	ID        string    `msgpack:"id"`
	Scores    []float32 `msgpack:"scores"`
	Count     int       `msgpack:"c"`
	TimeTaken int64     `msgpack:"t"`
}

// MatchResult is one (index, score) pair.
type MatchResult struct {
	Index int     `msgpack:"i"`
	Score float32 `msgpack:"s"`
}

// BestResponse answers op "best".
type BestResponse struct {
	ID        string      `msgpack:"id"`
	Match     MatchResult `msgpack:"m"`
	TimeTaken int64       `msgpack:"t"`
}

// RankResponse answers op "rank".
type RankResponse struct {
	ID        string        `msgpack:"id"`
	Matches   []MatchResult `msgpack:"m"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// StatusResponse answers "health" and signals readiness at startup.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}
