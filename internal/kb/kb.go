// Package kb holds the embedded offline knowledge base: a static text corpus
// partitioned into topical sections, indexed once at startup with TF-IDF and
// queried by similarity. Read-only after construction.
package kb

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed corpus.md
var seedCorpus string

const maxPassageChars = 420

// Passage is one indexed unit of the knowledge base
type Passage struct {
	ID      string // Stable identifier, e.g. "kb:health-misinformation#2"
	Section string
	Text    string
}

// KB is the in-memory knowledge base with its similarity index
type KB struct {
	passages []Passage
	index    *tfidfIndex
}

// Match is one retrieval hit
type Match struct {
	Passage Passage
	Score   float64 // Cosine similarity against the query, 0-1
}

// Load builds the knowledge base from the embedded seed corpus.
func Load() (*KB, error) {
	return Parse(seedCorpus)
}

// Parse builds a knowledge base from markdown partitioned by "## section"
// headings. Paragraphs are merged into passages capped at maxPassageChars.
func Parse(corpus string) (*KB, error) {
	passages := parsePassages(corpus)
	if len(passages) == 0 {
		return nil, fmt.Errorf("knowledge base corpus is empty")
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}

	return &KB{
		passages: passages,
		index:    newTFIDFIndex(texts),
	}, nil
}

// Search returns the topK most similar passages to the query, best first.
// Passages with zero similarity are omitted.
func (k *KB) Search(query string, topK int) []Match {
	if topK <= 0 {
		topK = 5
	}
	hits := k.index.query(query, topK)
	matches := make([]Match, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, Match{Passage: k.passages[h.doc], Score: h.score})
	}
	return matches
}

// Len returns the number of indexed passages.
func (k *KB) Len() int { return len(k.passages) }

// Sections returns the distinct section names in corpus order.
func (k *KB) Sections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range k.passages {
		if !seen[p.Section] {
			seen[p.Section] = true
			out = append(out, p.Section)
		}
	}
	return out
}

func parsePassages(corpus string) []Passage {
	var passages []Passage
	section := "general"
	counter := make(map[string]int)

	var para strings.Builder
	flush := func() {
		text := strings.TrimSpace(para.String())
		para.Reset()
		if text == "" {
			return
		}
		for _, chunk := range splitChunk(text, maxPassageChars) {
			n := counter[section]
			counter[section]++
			passages = append(passages, Passage{
				ID:      fmt.Sprintf("kb:%s#%d", section, n),
				Section: section,
				Text:    chunk,
			})
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(corpus))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "## "):
			flush()
			section = strings.TrimSpace(strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "# "):
			flush()
		case line == "":
			flush()
		default:
			if para.Len() > 0 {
				para.WriteByte(' ')
			}
			para.WriteString(line)
		}
	}
	flush()

	return passages
}

// splitChunk breaks an over-long paragraph at sentence boundaries so no
// passage exceeds the cap.
func splitChunk(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range splitOnTerminators(text) {
		if current.Len() > 0 && current.Len()+len(sentence)+1 > max {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks
}

func splitOnTerminators(text string) []string {
	var out []string
	var current strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && (i+1 >= len(runes) || runes[i+1] == ' ') {
			s := strings.TrimSpace(current.String())
			if s != "" {
				out = append(out, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		out = append(out, s)
	}
	return out
}
