// Package signal implements the whole-text heuristic detectors: independent
// scorers for sensationalism, social-engineering pressure, synthetic-text
// likelihood and phishing. Detectors share no state, so running any subset
// cannot change the scores of the others.
package signal

import (
	"context"

	"github.com/clarionhq/clarion/internal/model"
)

// Detector scores one whole-text property. Score is always in [0,1];
// Triggers carries the matched evidence behind it.
type Detector interface {
	Kind() model.SignalKind
	Detect(ctx context.Context, text string) model.SignalResult
}

// Suite is the set of configured detectors
type Suite struct {
	detectors map[model.SignalKind]Detector
	order     []model.SignalKind
}

// NewSuite registers the given detectors
func NewSuite(detectors ...Detector) *Suite {
	s := &Suite{detectors: make(map[model.SignalKind]Detector, len(detectors))}
	for _, d := range detectors {
		if _, dup := s.detectors[d.Kind()]; dup {
			continue
		}
		s.detectors[d.Kind()] = d
		s.order = append(s.order, d.Kind())
	}
	return s
}

// DefaultSuite wires the three rule-based detectors plus the classifier
// client when an endpoint is configured.
func DefaultSuite(cfg model.ClassifierConfig) *Suite {
	detectors := []Detector{
		NewMisinformation(),
		NewSocialEngineering(),
		NewAIText(),
	}
	if cfg.BaseURL != "" {
		detectors = append(detectors, NewPhishingClassifier(cfg))
	}
	return NewSuite(detectors...)
}

// Detect runs the requested detectors over the raw input text. A nil or
// empty request runs every registered detector. Results come back in
// registration order regardless of the requested order.
func (s *Suite) Detect(ctx context.Context, text string, requested []model.SignalKind) []model.SignalResult {
	want := make(map[model.SignalKind]bool, len(requested))
	for _, k := range requested {
		want[k] = true
	}

	var results []model.SignalResult
	for _, kind := range s.order {
		if len(requested) > 0 && !want[kind] {
			continue
		}
		results = append(results, s.detectors[kind].Detect(ctx, text))
	}
	return results
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
