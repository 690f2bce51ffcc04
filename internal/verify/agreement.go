package verify

import (
	"regexp"
	"strings"

	"github.com/clarionhq/clarion/internal/kb"
	"github.com/clarionhq/clarion/internal/model"
)

// Lexical agreement heuristic shared by the web-search and local KB
// verifiers so both map evidence to verdicts with the same thresholds.

const (
	strongSimilarity   = 0.35
	moderateSimilarity = 0.20
)

// Phrases that mark a passage as contradicting rather than restating a claim
var contradictionKeywords = []string{
	"false", "debunked", "hoax", "not true", "myth", "misleading",
	"incorrect", "untrue", "fabricated", "disproven", "fake",
	"no evidence", "lacks evidence", "lack evidence", "unfounded",
	"fraudulent", "staged",
}

var (
	digitsPattern  = regexp.MustCompile(`\d+`)
	capWordPattern = regexp.MustCompile(`\b[A-Z][a-z]+\b|\b[A-Z]{2,}\b`)
)

type agreement struct {
	Similarity    float64
	Contradiction bool
	EntityMatch   bool
}

// assessAgreement measures how strongly evidence text overlaps a claim and
// whether it pushes against it.
func assessAgreement(claim, evidence string) agreement {
	return agreement{
		Similarity:    overlapSimilarity(claim, evidence),
		Contradiction: hasContradiction(evidence),
		EntityMatch:   hasEntityMatch(claim, evidence),
	}
}

// verdictFor applies the tiered threshold logic. Strong overlap plus
// contradiction language refutes; strong overlap plus shared entities
// supports; anything weaker is not enough evidence.
func verdictFor(a agreement) model.Label {
	strong := a.Similarity > strongSimilarity
	moderate := a.Similarity > moderateSimilarity

	switch {
	case strong && a.Contradiction:
		return model.LabelRefuted
	case moderate && a.Contradiction && a.EntityMatch:
		return model.LabelRefuted
	case strong && a.EntityMatch:
		return model.LabelSupported
	case moderate && a.EntityMatch && !a.Contradiction:
		return model.LabelSupported
	default:
		return model.LabelNotEnoughEvidence
	}
}

// overlapSimilarity is the share of the claim's content words that appear
// in the evidence text.
func overlapSimilarity(claim, evidence string) float64 {
	claimWords := tokenSet(claim)
	if len(claimWords) == 0 {
		return 0
	}
	evidenceWords := tokenSet(evidence)
	overlap := 0
	for w := range claimWords {
		if evidenceWords[w] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(claimWords))
}

func hasContradiction(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range contradictionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasEntityMatch reports whether the claim and evidence share a number or a
// capitalized content word.
func hasEntityMatch(claim, evidence string) bool {
	cNums := stringSet(digitsPattern.FindAllString(claim, -1))
	eNums := stringSet(digitsPattern.FindAllString(evidence, -1))
	for n := range cNums {
		if eNums[n] {
			return true
		}
	}

	cCaps := capWordSet(claim)
	eCaps := capWordSet(evidence)
	for w := range cCaps {
		if eCaps[w] {
			return true
		}
	}
	return false
}

// capWordSet collects capitalized words, skipping sentence-initial function
// words like "The" by tokenizing through the stopword filter.
func capWordSet(s string) map[string]bool {
	set := make(map[string]bool)
	content := tokenSet(s)
	for _, w := range capWordPattern.FindAllString(s, -1) {
		if content[strings.ToLower(w)] {
			set[strings.ToLower(w)] = true
		}
	}
	return set
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range kb.Tokenize(s) {
		set[t] = true
	}
	return set
}

func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
