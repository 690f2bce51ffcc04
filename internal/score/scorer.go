// Package score blends claim verdicts and whole-text signals into the final
// trustworthiness confidence.
package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/clarionhq/clarion/internal/model"
)

// Scorer computes the blended confidence for a report.
type Scorer struct {
	cfg model.ScoreConfig
}

// NewScorer creates a scorer with the given policy.
func NewScorer(cfg model.ScoreConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score fills in the report's counts, confidence, and summary from its
// verdicts and signals. Claims contribute through a sub-score of
// 100*(correct-incorrect)/total; with no claims the sub-score sits at the
// neutral midpoint. Signals contribute through 100 minus the weighted mean
// of signal scores. Only the blended result is clamped to [0,100], so a
// text where every claim is refuted can drag confidence well below the
// signal sub-score alone.
func (s *Scorer) Score(report *model.Report) {
	report.CorrectCount, report.IncorrectCount, report.UnverifiableCount = countVerdicts(report.Claims)

	claimSub := s.cfg.NeutralClaim
	total := len(report.Claims)
	if total > 0 {
		claimSub = 100 * float64(report.CorrectCount-report.IncorrectCount) / float64(total)
	}

	signalSub := s.signalSubScore(report.Mode, report.Signals)

	confidence := s.cfg.ClaimWeight*claimSub + s.cfg.SignalWeight*signalSub
	report.Confidence = math.Round(math.Max(0, math.Min(100, confidence)))
	report.Summary = s.summarize(report, claimSub, signalSub)
}

func countVerdicts(verdicts []model.Verdict) (correct, incorrect, unverifiable int) {
	for _, v := range verdicts {
		switch v.Label {
		case model.LabelSupported:
			correct++
		case model.LabelRefuted:
			incorrect++
		default:
			unverifiable++
		}
	}
	return correct, incorrect, unverifiable
}

// signalSubScore is 100 minus the weighted mean of signal scores (each in
// [0,1], scaled to 100). In phishing mode the phishing signal gets the
// configured extra weight and the rest of the weights shrink to keep the
// total at 1.
func (s *Scorer) signalSubScore(mode model.Mode, signals []model.SignalResult) float64 {
	if len(signals) == 0 {
		return 100
	}
	weights := s.weightsFor(mode, signals)

	var weighted, totalWeight float64
	for _, sig := range signals {
		w := weights[sig.Kind]
		weighted += w * sig.Score * 100
		totalWeight += w
	}
	if totalWeight == 0 {
		return 100
	}
	return 100 - weighted/totalWeight
}

func (s *Scorer) weightsFor(mode model.Mode, signals []model.SignalResult) map[model.SignalKind]float64 {
	weights := make(map[model.SignalKind]float64, len(signals))
	for _, sig := range signals {
		if w, ok := s.cfg.SignalWeights[sig.Kind]; ok {
			weights[sig.Kind] = w
		} else {
			weights[sig.Kind] = 1.0 / float64(len(signals))
		}
	}
	if mode == model.ModePhishing && s.cfg.PhishingWeight > 0 {
		if _, ok := weights[model.SignalPhishing]; ok {
			rest := 0.0
			for kind, w := range weights {
				if kind != model.SignalPhishing {
					rest += w
				}
			}
			if rest > 0 {
				scale := (1 - s.cfg.PhishingWeight) / rest
				for kind := range weights {
					if kind != model.SignalPhishing {
						weights[kind] *= scale
					}
				}
			}
			weights[model.SignalPhishing] = s.cfg.PhishingWeight
		}
	}
	return weights
}

type reason struct {
	text   string
	impact float64
}

// summarize builds the human-readable reasons list, strongest contributor
// first.
func (s *Scorer) summarize(report *model.Report, claimSub, signalSub float64) []string {
	var reasons []reason

	total := len(report.Claims)
	switch {
	case total == 0:
		reasons = append(reasons, reason{
			text:   "no verifiable factual claims were found; score reflects writing signals only",
			impact: 0,
		})
	default:
		impact := s.cfg.ClaimWeight * math.Abs(claimSub-s.cfg.NeutralClaim)
		switch {
		case report.IncorrectCount > 0:
			reasons = append(reasons, reason{
				text:   fmt.Sprintf("%d of %d claims were refuted by evidence", report.IncorrectCount, total),
				impact: impact + 1, // refutations lead regardless of magnitude
			})
		case report.CorrectCount == total:
			reasons = append(reasons, reason{
				text:   fmt.Sprintf("all %d claims were supported by evidence", total),
				impact: impact,
			})
		case report.CorrectCount > 0:
			reasons = append(reasons, reason{
				text:   fmt.Sprintf("%d of %d claims were supported by evidence", report.CorrectCount, total),
				impact: impact,
			})
		}
		if report.UnverifiableCount > 0 {
			reasons = append(reasons, reason{
				text:   fmt.Sprintf("%d of %d claims could not be verified", report.UnverifiableCount, total),
				impact: 0.5,
			})
		}
	}

	for _, sig := range report.Signals {
		if sig.Score < 0.30 {
			continue
		}
		w := s.cfg.SignalWeights[sig.Kind]
		reasons = append(reasons, reason{
			text:   fmt.Sprintf("%s signal scored %.0f%%", signalLabel(sig.Kind), sig.Score*100),
			impact: s.cfg.SignalWeight * w * sig.Score * 100,
		})
	}

	sort.SliceStable(reasons, func(i, j int) bool { return reasons[i].impact > reasons[j].impact })

	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.text)
	}
	return out
}

func signalLabel(kind model.SignalKind) string {
	switch kind {
	case model.SignalMisinformation:
		return "misinformation"
	case model.SignalSocialEngineering:
		return "social engineering"
	case model.SignalAIGenerated:
		return "AI-generated text"
	case model.SignalPhishing:
		return "phishing"
	default:
		return string(kind)
	}
}
