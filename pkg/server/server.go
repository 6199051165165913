package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/EnaiaInc/trigram/internal/logger"
	"github.com/EnaiaInc/trigram/pkg/config"
	"github.com/EnaiaInc/trigram/pkg/trigram"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for similarity scoring.
type Server struct {
	scorer *trigram.Scorer
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	out    *bufio.Writer
	log    *log.Logger
}

// NewServer creates a scoring server using stdin/stdout for IPC.
func NewServer(scorer *trigram.Scorer, cfg *config.Config) *Server {
	return newServer(scorer, cfg, os.Stdin, os.Stdout)
}

func newServer(scorer *trigram.Scorer, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	out := bufio.NewWriter(w)
	return &Server{
		scorer: scorer,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		enc:    msgpack.NewEncoder(out),
		out:    out,
		log:    logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "sim":
		s.handleSimilarity(request)
	case "batch":
		s.handleBatch(request)
	case "best":
		s.handleBest(request)
	case "rank":
		s.handleRank(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

func (s *Server) handleSimilarity(request Request) {
	if !s.checkTextLen(request.ID, request.A, request.B) {
		return
	}
	start := time.Now()
	score := trigram.Similarity(request.A, request.B)
	s.send(SimilarityResponse{
		ID:        request.ID,
		Score:     score,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleBatch(request Request) {
	if len(request.Pairs) > s.cfg.Server.MaxBatch {
		s.sendError(request.ID, fmt.Sprintf("Batch exceeds maximum of %d pairs", s.cfg.Server.MaxBatch), 400)
		return
	}
	pairs := make([]trigram.Pair, len(request.Pairs))
	for i, p := range request.Pairs {
		pairs[i] = trigram.Pair{A: p[0], B: p[1]}
	}

	start := time.Now()
	scores := s.scorer.SimilarityBatch(pairs)
	s.send(BatchResponse{
		ID:        request.ID,
		Scores:    scores,
		Count:     len(scores),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleBest(request Request) {
	if !s.checkCandidates(request.ID, request.Haystacks) {
		return
	}
	start := time.Now()
	match, err := s.scorer.BestMatch(request.Needle, request.Haystacks)
	if err != nil {
		// empty candidate set is the one expected failure; report it
		// structurally instead of inventing a sentinel score
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	s.send(BestResponse{
		ID:        request.ID,
		Match:     MatchResult{Index: match.Index, Score: match.Score},
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleRank(request Request) {
	if !s.checkCandidates(request.ID, request.Haystacks) {
		return
	}
	start := time.Now()
	matches := s.scorer.ScoreAll(request.Needle, request.Haystacks, request.Min)
	if request.Limit > 0 && len(matches) > request.Limit {
		matches = matches[:request.Limit]
	}

	results := make([]MatchResult, len(matches))
	for i, m := range matches {
		results[i] = MatchResult{Index: m.Index, Score: m.Score}
	}
	s.send(RankResponse{
		ID:        request.ID,
		Matches:   results,
		Count:     len(results),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// checkTextLen rejects oversized inputs before they hit the scoring path.
func (s *Server) checkTextLen(id string, texts ...string) bool {
	for _, t := range texts {
		if len(t) > s.cfg.Server.MaxTextLen {
			s.sendError(id, fmt.Sprintf("Text exceeds maximum length of %d bytes", s.cfg.Server.MaxTextLen), 400)
			return false
		}
	}
	return true
}

func (s *Server) checkCandidates(id string, haystacks []string) bool {
	if len(haystacks) > s.cfg.Server.MaxCandidates {
		s.sendError(id, fmt.Sprintf("Candidate list exceeds maximum of %d entries", s.cfg.Server.MaxCandidates), 400)
		return false
	}
	return true
}

// send encodes one response and flushes it so the client never waits on a
// buffered reply.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Flushing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Status: code})
}
