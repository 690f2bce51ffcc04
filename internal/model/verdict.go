package model

// Label is the outcome of verifying one claim
type Label string

const (
	LabelSupported         Label = "supported"           // Evidence agrees with the claim
	LabelRefuted           Label = "refuted"             // Evidence contradicts the claim
	LabelNotEnoughEvidence Label = "not_enough_evidence" // No usable evidence either way
)

// VerifierKind identifies a claim-verification backend
type VerifierKind string

const (
	VerifierRemote    VerifierKind = "remote"     // Remote fact-check assistant
	VerifierWebSearch VerifierKind = "web_search" // Web search snippet verifier
	VerifierLocalKB   VerifierKind = "local_kb"   // Offline knowledge-base verifier
)

// Evidence is one snippet supporting or contradicting a claim
type Evidence struct {
	Snippet  string       `json:"snippet"`          // The evidence text
	Source   string       `json:"source,omitempty"` // URL or KB section id
	Verifier VerifierKind `json:"verifier"`         // Backend that produced it
}

// Attempt records one verifier tried for a claim, in order
type Attempt struct {
	Verifier VerifierKind `json:"verifier"`
	Failure  string       `json:"failure,omitempty"` // Empty if the verifier answered
}

// Verdict is the immutable verification outcome for a single claim
type Verdict struct {
	Claim        Claim        `json:"claim"`
	Label        Label        `json:"label"`
	Evidence     []Evidence   `json:"evidence,omitempty"`
	Similarity   float64      `json:"similarity"`              // Best claim/evidence agreement (0-1)
	VerifierUsed VerifierKind `json:"verifier_used,omitempty"` // Empty only when every verifier failed
	Attempted    []Attempt    `json:"attempted_verifiers"`     // Failure trail for diagnostics
}
