package model

import "time"

// Report is the complete result of one analysis request.
// Built once per request and never mutated afterwards; not persisted.
type Report struct {
	Mode       Mode      `json:"mode"`                 // Analysis mode that selected the verifier order
	SourceURL  string    `json:"source_url,omitempty"` // Set only when the input came from a URL
	AnalyzedAt time.Time `json:"analyzed_at"`

	Claims  []Verdict      `json:"claims"`  // One verdict per claim, extraction order
	Signals []SignalResult `json:"signals"` // One result per requested detector

	CorrectCount      int `json:"correct_count"`      // Supported verdicts
	IncorrectCount    int `json:"incorrect_count"`    // Refuted verdicts
	UnverifiableCount int `json:"unverifiable_count"` // NotEnoughEvidence verdicts

	Confidence float64  `json:"confidence"` // Blended trust score, 0-100
	Summary    []string `json:"summary"`    // Top contributing reasons, largest first
}

// Mode selects which verifier priority order the orchestrator uses
type Mode string

const (
	ModeFactCheck Mode = "fact_check" // Remote assistant first
	ModeNews      Mode = "news"       // Web search first
	ModePhishing  Mode = "phishing"   // Web search first, phishing signal weighted up
)

// Citations returns the unique evidence source URLs across all verdicts,
// in first-seen order.
func (r *Report) Citations() []string {
	seen := make(map[string]bool)
	var urls []string
	for _, v := range r.Claims {
		for _, ev := range v.Evidence {
			if ev.Source == "" || seen[ev.Source] {
				continue
			}
			seen[ev.Source] = true
			urls = append(urls, ev.Source)
		}
	}
	return urls
}
