package bot

import (
	"bufio"
	"os"
	"strings"
)

// QAPair is a stored question/answer tuple used for direct-match lookup
// before falling back to a generative model.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DefaultMinTokenLen is the original matching heuristic: only tokens longer
// than 3 characters count toward a keyword match.
const DefaultMinTokenLen = 3

// LoadQAPairs reads alternating "Q:" / "A:" lines into an ordered list.
// Lines outside that shape are skipped; a trailing question without an
// answer is dropped.
func LoadQAPairs(path string) ([]QAPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs := make([]QAPair, 0)
	var question string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "Q:"):
			question = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "A:"):
			if question != "" {
				pairs = append(pairs, QAPair{
					Question: question,
					Answer:   strings.TrimSpace(line[2:]),
				})
				question = ""
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// MatchAnswer performs case-insensitive keyword matching of the question
// against the stored pairs. A pair matches when any token of the incoming
// question longer than minTokenLen characters appears as a substring of the
// stored question; the first matching pair wins.
func MatchAnswer(pairs []QAPair, question string, minTokenLen int) (string, bool) {
	tokens := strings.Fields(strings.ToLower(question))
	for _, qa := range pairs {
		stored := strings.ToLower(qa.Question)
		for _, tok := range tokens {
			if len(tok) > minTokenLen && strings.Contains(stored, tok) {
				return qa.Answer, true
			}
		}
	}
	return "", false
}

// CorpusContext renders all pairs as a prompt context block.
func CorpusContext(pairs []QAPair) string {
	var b strings.Builder
	for i, qa := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Q: " + qa.Question + "\nA: " + qa.Answer)
	}
	return b.String()
}
