package signal

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/clarionhq/clarion/internal/model"
)

// Sensational and urgency-laden framing
var sensationalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(breaking|urgent|alert|shocking|exclusive|revealed)\b`),
	regexp.MustCompile(`(?i)\b(they don't want you to know|they're hiding|cover.?up)\b`),
	regexp.MustCompile(`(?i)\b(share this|forward this|tell everyone|spread the word)\b`),
	regexp.MustCompile(`(?i)\b(must see|you won't believe|mind.?blowing)\b`),
	regexp.MustCompile(`(?i)\b(conspiracy|mainstream media|fake news)\b`),
	regexp.MustCompile(`(?i)\b100% (true|guaranteed|proven)\b`),
	regexp.MustCompile(`(?i)\b(doctors hate|big pharma|big tech)\b`),
}

var emotionalWords = regexp.MustCompile(`(?i)\b(danger|scandal|outrage|horror|terrifying|devastating|exposed|secret|hidden|lies|corruption|crisis|emergency|panic|fear|warning)\b`)

var viralSharePattern = regexp.MustCompile(`(?i)\b(share|forward|tell everyone|spread)\b`)
var conspiracyPattern = regexp.MustCompile(`(?i)don't want you to know|they're hiding|cover.?up`)

// Misinformation scores sensational and manipulative framing in the text.
// It says nothing about factual correctness; that is the verifiers' job.
type Misinformation struct{}

// NewMisinformation creates the sensationalism detector
func NewMisinformation() *Misinformation { return &Misinformation{} }

// Kind implements Detector.
func (d *Misinformation) Kind() model.SignalKind { return model.SignalMisinformation }

// Detect computes a weighted sum of normalized indicator counts, clipped
// to [0,1].
func (d *Misinformation) Detect(_ context.Context, text string) model.SignalResult {
	result := model.SignalResult{Kind: d.Kind()}
	if strings.TrimSpace(text) == "" {
		return result
	}

	caps := upperRatio(text)
	punct := excessPunctuation(text)
	sensational := countPatternHits(text, sensationalPatterns)
	emotional := len(emotionalWords.FindAllString(text, -1))
	viral := viralSharePattern.MatchString(text)
	conspiracy := conspiracyPattern.MatchString(text)

	var triggers []string
	if caps > 0.3 {
		triggers = append(triggers, fmt.Sprintf("high ALL-CAPS ratio (%.0f%%)", caps*100))
	} else if caps > 0.15 {
		triggers = append(triggers, fmt.Sprintf("elevated caps usage (%.0f%%)", caps*100))
	}
	if punct > 0.3 {
		triggers = append(triggers, "excessive punctuation (!!! ???)")
	}
	if sensational >= 2 {
		triggers = append(triggers, fmt.Sprintf("sensational/urgent language (%d patterns)", sensational))
	} else if sensational == 1 {
		triggers = append(triggers, "some sensational phrasing")
	}
	if emotional >= 3 {
		triggers = append(triggers, fmt.Sprintf("emotionally charged words (%d)", emotional))
	} else if emotional >= 1 {
		triggers = append(triggers, "emotionally charged vocabulary")
	}
	if viral {
		triggers = append(triggers, "encourages viral sharing")
	}
	if conspiracy {
		triggers = append(triggers, "conspiracy-style framing")
	}

	score := 0.0
	score += minf(0.25, caps*0.5)
	score += minf(0.15, punct*0.5)
	score += minf(0.25, float64(sensational)*0.12)
	score += minf(0.20, float64(emotional)*0.06)
	if viral {
		score += 0.10
	}
	if conspiracy {
		score += 0.15
	}

	result.Score = clamp01(score)
	result.Triggers = triggers
	return result
}

func upperRatio(text string) float64 {
	letters, uppers := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(uppers) / float64(letters)
}

var punctuationRuns = regexp.MustCompile(`!+|\?+`)

func excessPunctuation(text string) float64 {
	runs := len(punctuationRuns.FindAllString(text, -1))
	return minf(1, float64(runs)/3)
}

func countPatternHits(text string, patterns []*regexp.Regexp) int {
	hits := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			hits++
		}
	}
	return hits
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
