package kb

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Minimal TF-IDF index over a fixed document set. Built once, queried by
// cosine similarity. Stopwords and single-character tokens are dropped so
// function words do not dominate short queries.

var tokenPattern = regexp.MustCompile(`\b\w+\b`)

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "with": true,
	"by": true, "from": true, "as": true, "that": true, "this": true,
	"these": true, "those": true, "it": true, "its": true, "and": true,
	"or": true, "but": true, "not": true, "no": true, "nor": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "can": true, "could": true,
	"should": true, "may": true, "might": true, "their": true, "there": true,
	"they": true, "you": true, "your": true, "we": true, "our": true,
	"he": true, "she": true, "his": true, "her": true, "them": true,
	"than": true, "then": true, "so": true, "if": true, "about": true,
	"into": true, "over": true, "under": true, "such": true, "only": true,
	"also": true, "very": true, "more": true, "most": true, "other": true,
	"own": true, "same": true, "too": true, "just": true, "any": true,
	"all": true, "some": true, "one": true, "who": true, "what": true,
	"when": true, "where": true, "which": true, "how": true, "why": true,
	"because": true, "through": true, "never": true, "ever": true,
}

// Tokenize lowercases text and returns its content-word tokens.
func Tokenize(s string) []string {
	var tokens []string
	for _, t := range tokenPattern.FindAllString(strings.ToLower(s), -1) {
		if len(t) < 2 && !isDigits(t) {
			continue
		}
		if stopwords[t] {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

type tfidfIndex struct {
	idf     map[string]float64
	vectors []map[string]float64 // One weighted, unnormalized vector per document
	norms   []float64
}

type hit struct {
	doc   int
	score float64
}

func newTFIDFIndex(docs []string) *tfidfIndex {
	df := make(map[string]int)
	tokenized := make([][]string, len(docs))
	for i, d := range docs {
		tokenized[i] = Tokenize(d)
		seen := make(map[string]bool)
		for _, t := range tokenized[i] {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for t, c := range df {
		idf[t] = math.Log(1+n/float64(c)) + 1
	}

	idx := &tfidfIndex{
		idf:     idf,
		vectors: make([]map[string]float64, len(docs)),
		norms:   make([]float64, len(docs)),
	}
	for i, tokens := range tokenized {
		vec := make(map[string]float64)
		for _, t := range tokens {
			vec[t] += idf[t]
		}
		idx.vectors[i] = vec
		idx.norms[i] = norm(vec)
	}
	return idx
}

func (idx *tfidfIndex) query(q string, topK int) []hit {
	qvec := make(map[string]float64)
	for _, t := range Tokenize(q) {
		w, ok := idx.idf[t]
		if !ok {
			// Unseen term: treat as maximally rare so it still contributes
			// to the query norm and depresses similarity.
			w = math.Log(1+float64(len(idx.vectors))) + 1
		}
		qvec[t] += w
	}
	qnorm := norm(qvec)
	if qnorm == 0 {
		return nil
	}

	var hits []hit
	for i, dvec := range idx.vectors {
		if idx.norms[i] == 0 {
			continue
		}
		var dot float64
		for t, qw := range qvec {
			if dw, ok := dvec[t]; ok {
				dot += qw * dw
			}
		}
		if dot == 0 {
			continue
		}
		hits = append(hits, hit{doc: i, score: dot / (qnorm * idx.norms[i])})
	}

	sort.Slice(hits, func(a, b int) bool { return hits[a].score > hits[b].score })
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

func norm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}
