package model

import "strings"

// Claim represents one atomic factual assertion extracted from input text
type Claim struct {
	Text      string `json:"text"`                // The claim text itself
	Index     int    `json:"index"`               // Position in extraction order (0-based)
	Heuristic string `json:"heuristic,omitempty"` // Which extraction rule matched (e.g., "strong-verb")
}

// Key returns the deduplication key for a claim: lowercased with
// whitespace collapsed, so near-identical sentences compare equal.
func (c Claim) Key() string {
	return strings.Join(strings.Fields(strings.ToLower(c.Text)), " ")
}
