package model

// SignalKind classifies a whole-text heuristic detector
type SignalKind string

const (
	SignalMisinformation    SignalKind = "misinformation"     // Sensational/emotional framing
	SignalSocialEngineering SignalKind = "social_engineering" // Urgency, credential and money pressure
	SignalAIGenerated       SignalKind = "ai_generated"       // Synthetic-text likelihood
	SignalPhishing          SignalKind = "phishing"           // Pretrained classifier verdict
)

// SignalResult is the output of one detector over the whole input text
type SignalResult struct {
	Kind     SignalKind `json:"kind"`
	Score    float64    `json:"score"`              // Bounded to [0,1]; higher means less trustworthy
	Triggers []string   `json:"triggers,omitempty"` // Matched patterns/phrases behind the score
}
