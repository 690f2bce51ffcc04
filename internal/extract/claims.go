// Package extract implements rule-based claim extraction from plain text.
package extract

import (
	"regexp"
	"strings"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/text"
)

// MaxClaims caps how many claims one analysis verifies.
const MaxClaims = 6

const minClaimTokens = 4

// Verbs that usually carry a factual assertion
var strongVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "has": true,
	"have": true, "had": true, "will": true, "would": true,
	"said": true, "says": true, "claimed": true, "claims": true,
	"reported": true, "reports": true,
	"proved": true, "proves": true, "shows": true, "showed": true,
	"causes": true, "caused": true, "kills": true, "killed": true,
	"prevents": true, "prevented": true, "increases": true, "increased": true,
	"reduces": true, "reduced": true, "found": true, "discovered": true,
	"confirmed": true, "denied": true, "revealed": true, "linked": true,
	"contains": true, "agree": true, "agrees": true,
}

// Hedging phrases that mark a sentence as opinion rather than assertion
var hedgePhrases = []string{
	"i think", "i believe", "i feel", "in my opinion", "personally",
	"probably", "maybe", "perhaps", "arguably", "it seems", "seems like",
}

// Conjunctions that continue the previous sentence's subject
var leadingConjunctions = map[string]bool{
	"and": true, "but": true, "or": true, "so": true, "yet": true, "nor": true,
}

var (
	numberPattern = regexp.MustCompile(`\d+([.,]\d+)?%?|\d{1,2}/\d{1,2}/\d{2,4}`)
	entityPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b|\b[A-Z]{2,}\b`)
	wordPattern   = regexp.MustCompile(`\b\w+\b`)
)

// ClaimExtractor splits normalized text into independently checkable claims
type ClaimExtractor struct {
	maxClaims int
}

// NewClaimExtractor creates an extractor with the default claim cap
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{maxClaims: MaxClaims}
}

// Extract returns up to maxClaims claims in document order. Empty or
// non-declarative input yields zero claims, never an error.
func (e *ClaimExtractor) Extract(input string) []model.Claim {
	if text.IsEmpty(input) {
		return nil
	}

	sentences := text.SplitSentences(input)
	if len(sentences) == 0 {
		return nil
	}

	candidates := selectCandidates(sentences)
	if len(candidates) == 0 {
		candidates = fallbackCandidates(sentences)
	}

	merged := mergeConjoined(candidates)

	var claims []model.Claim
	seen := make(map[string]bool)
	for _, c := range merged {
		if len(claims) >= e.maxClaims {
			break
		}
		claim := model.Claim{Text: c.sentence, Index: len(claims), Heuristic: c.heuristic}
		key := claim.Key()
		if key == "" || seen[key] {
			continue
		}
		if isNearDuplicate(claims, claim) {
			continue
		}
		seen[key] = true
		claims = append(claims, claim)
	}
	return claims
}

type candidate struct {
	sentence  string
	heuristic string
}

// selectCandidates keeps declarative, claim-like sentences in order
func selectCandidates(sentences []string) []candidate {
	var out []candidate
	for _, s := range sentences {
		if isQuestion(s) || isExclamationOnly(s) {
			continue
		}
		if tokenCount(s) < minClaimTokens {
			continue
		}
		if isOpinion(s) {
			continue
		}
		h, ok := claimHeuristic(s)
		if !ok {
			continue
		}
		out = append(out, candidate{sentence: s, heuristic: h})
	}
	return out
}

// fallbackCandidates returns the first declarative sentences when no
// sentence looked claim-like, so declarative input never yields zero claims.
func fallbackCandidates(sentences []string) []candidate {
	var out []candidate
	for _, s := range sentences {
		if isQuestion(s) || isExclamationOnly(s) {
			continue
		}
		if tokenCount(s) < minClaimTokens {
			continue
		}
		if isOpinion(s) {
			continue
		}
		out = append(out, candidate{sentence: s, heuristic: "fallback"})
		if len(out) >= 2 {
			break
		}
	}
	return out
}

// mergeConjoined joins a sentence starting with a coordinating conjunction
// onto the previous candidate, since it continues the same subject.
func mergeConjoined(candidates []candidate) []candidate {
	var out []candidate
	for _, c := range candidates {
		first := strings.ToLower(firstWord(c.sentence))
		if len(out) > 0 && leadingConjunctions[first] {
			prev := &out[len(out)-1]
			prev.sentence = prev.sentence + " " + c.sentence
			continue
		}
		out = append(out, c)
	}
	return out
}

func claimHeuristic(s string) (string, bool) {
	if hasStrongVerb(s) {
		return "strong-verb", true
	}
	if numberPattern.MatchString(s) {
		return "number", true
	}
	if hasEntity(s) {
		return "entity", true
	}
	return "", false
}

// hasEntity reports whether the sentence names a proper noun. Every
// sentence capitalizes its opening word, so a single-word match in that
// position is discounted unless it is an acronym.
func hasEntity(s string) bool {
	first := firstWord(s)
	for _, m := range entityPattern.FindAllString(s, -1) {
		if m == first && !strings.Contains(m, " ") && m != strings.ToUpper(m) {
			continue
		}
		return true
	}
	return false
}

func hasStrongVerb(s string) bool {
	for _, w := range wordPattern.FindAllString(strings.ToLower(s), -1) {
		if strongVerbs[w] {
			return true
		}
	}
	return false
}

func isQuestion(s string) bool {
	return strings.HasSuffix(strings.TrimSpace(s), "?")
}

// isExclamationOnly matches interjection-style sentences that end in an
// exclamation mark and carry no assertion (no strong verb and no number).
func isExclamationOnly(s string) bool {
	if !strings.HasSuffix(strings.TrimSpace(s), "!") {
		return false
	}
	return !hasStrongVerb(s) && !numberPattern.MatchString(s)
}

// isOpinion matches hedged sentences with no factual anchor
func isOpinion(s string) bool {
	lower := strings.ToLower(s)
	hedged := false
	for _, p := range hedgePhrases {
		if strings.Contains(lower, p) {
			hedged = true
			break
		}
	}
	if !hedged {
		return false
	}
	return !numberPattern.MatchString(s) && !hasEntity(s)
}

func tokenCount(s string) int {
	return len(wordPattern.FindAllString(s, -1))
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ",.;:")
}

// isNearDuplicate rejects a claim whose word set mostly overlaps an
// already selected claim.
func isNearDuplicate(selected []model.Claim, c model.Claim) bool {
	words := wordSet(c.Text)
	if len(words) == 0 {
		return true
	}
	for _, prev := range selected {
		overlap := 0
		prevWords := wordSet(prev.Text)
		for w := range words {
			if prevWords[w] {
				overlap++
			}
		}
		if float64(overlap)/float64(len(words)) >= 0.8 {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(strings.ToLower(s), -1) {
		set[w] = true
	}
	return set
}
