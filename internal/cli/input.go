// Package cli handles cmd line input for DBG and testing: rank a typed
// query against a candidate list, or score tab-separated pairs.
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/EnaiaInc/trigram/pkg/trigram"
	"github.com/charmbracelet/log"
)

// InputHandler reads queries from stdin and prints scores. With a
// candidate list loaded it ranks every line via ScoreAll; without one it
// expects "left<TAB>right" and scores the pair.
type InputHandler struct {
	scorer     *trigram.Scorer
	candidates []string
	limit      int
	minScore   float32
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(scorer *trigram.Scorer, candidates []string, limit int, minScore float32) *InputHandler {
	return &InputHandler{
		scorer:     scorer,
		candidates: candidates,
		limit:      limit,
		minScore:   minScore,
	}
}

// LoadCandidates reads one candidate per line, skipping blanks.
func LoadCandidates(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var candidates []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			candidates = append(candidates, line)
		}
	}
	return candidates, scanner.Err()
}

// Start begins the interface loop. It reads a line from stdin, scores it,
// and prints the result until stdin closes.
func (h *InputHandler) Start() error {
	log.Print("trigramserve CLI")
	if len(h.candidates) > 0 {
		log.Printf("ranking against %d candidates (min score %.2f), Ctrl+C to exit:", len(h.candidates), h.minScore)
	} else {
		log.Print("type `left<TAB>right` and press Enter to score the pair (Ctrl+C to exit):")
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	if len(h.candidates) == 0 {
		left, right, found := strings.Cut(line, "\t")
		if !found {
			log.Warn("No tab separator found; expected `left<TAB>right`")
			return
		}
		score := trigram.Similarity(left, right)
		log.Printf("similarity(%q, %q) = %.4f", left, right, score)
		return
	}

	start := time.Now()
	matches := h.scorer.ScoreAll(line, h.candidates, h.minScore)
	elapsed := time.Since(start)

	if len(matches) == 0 {
		log.Printf("no candidates at or above %.2f (%s)", h.minScore, elapsed)
		return
	}
	if h.limit > 0 && len(matches) > h.limit {
		matches = matches[:h.limit]
	}
	for rank, m := range matches {
		log.Printf("%2d. [%.4f] %s", rank+1, m.Score, h.candidates[m.Index])
	}
	log.Printf("%d match(es) in %s", len(matches), elapsed)
}
