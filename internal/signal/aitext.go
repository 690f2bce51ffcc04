package signal

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/text"
)

var genericAIPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bit's important to note\b`),
	regexp.MustCompile(`(?i)\bin conclusion\b`),
	regexp.MustCompile(`(?i)\bhowever, it is (worth noting|important)\b`),
	regexp.MustCompile(`(?i)\badditionally\b`),
	regexp.MustCompile(`(?i)\bfurthermore\b`),
	regexp.MustCompile(`(?i)\bmoreover\b`),
	regexp.MustCompile(`(?i)\bcomprehensive(ly)?\b`),
	regexp.MustCompile(`(?i)\bdelve (into|deeper)\b`),
	regexp.MustCompile(`(?i)\bnavigate (the|these)\b`),
	regexp.MustCompile(`(?i)\blandscape\b`),
	regexp.MustCompile(`(?i)\bnuanced\b`),
	regexp.MustCompile(`(?i)\bholistic\b`),
	regexp.MustCompile(`(?i)\bleverage\b`),
	regexp.MustCompile(`(?i)\bparadigm\b`),
}

var aiWordPattern = regexp.MustCompile(`\b\w+\b`)

// AIText estimates how likely the text is machine-generated from surface
// statistics: lexical diversity, sentence-length variance, stock phrasing
// and paragraph uniformity.
type AIText struct{}

// NewAIText creates the synthetic-text detector
func NewAIText() *AIText { return &AIText{} }

// Kind implements Detector.
func (d *AIText) Kind() model.SignalKind { return model.SignalAIGenerated }

// Detect blends the normalized indicators into [0,1]
func (d *AIText) Detect(_ context.Context, input string) model.SignalResult {
	result := model.SignalResult{Kind: d.Kind()}
	if strings.TrimSpace(input) == "" {
		return result
	}

	sentences := text.SplitSentences(input)
	diversity := uniqueWordRatio(input)
	variance := sentenceLengthStddev(sentences)
	generic := countPatternHits(input, genericAIPhrases)
	uniformity := paragraphUniformity(input)
	avgLen := averageSentenceLength(sentences)

	var triggers []string
	if diversity < 0.5 {
		triggers = append(triggers, "low lexical diversity (repetitive vocabulary)")
	} else if diversity < 0.65 {
		triggers = append(triggers, "moderate lexical diversity")
	}
	if variance < 5 && len(sentences) >= 3 {
		triggers = append(triggers, "uniform sentence lengths")
	}
	if generic >= 3 {
		triggers = append(triggers, fmt.Sprintf("generic AI-style phrases (%d)", generic))
	} else if generic >= 1 {
		triggers = append(triggers, "some generic phrasing")
	}
	if uniformity > 0.6 {
		triggers = append(triggers, "uniform paragraph structure")
	}
	if avgLen > 25 && len(sentences) >= 2 {
		triggers = append(triggers, "long, complex sentences")
	}

	score := 0.0
	score += (1 - diversity) * 0.25
	score += (1 - minf(1, variance/15)) * 0.20
	score += minf(0.25, float64(generic)*0.08)
	score += uniformity * 0.15
	if avgLen > 15 {
		score += minf(0.15, (avgLen-15)/50)
	}

	result.Score = clamp01(score)
	result.Triggers = triggers
	return result
}

func uniqueWordRatio(input string) float64 {
	words := aiWordPattern.FindAllString(strings.ToLower(input), -1)
	if len(words) == 0 {
		return 1
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	return float64(len(unique)) / float64(len(words))
}

func sentenceLengthStddev(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0
	}
	lengths := make([]float64, len(sentences))
	var sum float64
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	return math.Sqrt(variance / float64(len(lengths)))
}

func averageSentenceLength(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

// paragraphUniformity returns a higher value when paragraphs are close in
// length, which machine-generated text tends toward.
func paragraphUniformity(input string) float64 {
	var paras []string
	for _, p := range strings.Split(input, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paras = append(paras, p)
		}
	}
	if len(paras) < 2 {
		return 0.5
	}
	lengths := make([]float64, len(paras))
	var sum float64
	for i, p := range paras {
		lengths[i] = float64(len(strings.Fields(p)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	std := math.Sqrt(variance / float64(len(lengths)))
	return math.Max(0, 1-std/50)
}
