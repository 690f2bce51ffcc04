package verify

import (
	"testing"
	"time"

	"github.com/clarionhq/clarion/internal/model"
)

func TestNewRemote_RequiresAPIKey(t *testing.T) {
	if _, err := NewRemote(model.RemoteConfig{Model: "gpt-4o-mini"}); err == nil {
		t.Fatal("expected error without API key")
	}
	if _, err := NewRemote(model.RemoteConfig{APIKey: "sk-test", Model: "gpt-4o-mini", Timeout: time.Second}); err != nil {
		t.Fatalf("unexpected error with API key: %v", err)
	}
}

func TestParseRemoteResponse_Supported(t *testing.T) {
	content := `VERDICT: Supported
EVIDENCE: Multiple satellite measurements confirm the Earth is an oblate spheroid.
SOURCES: https://nasa.example.gov/earth https://esa.example.int/shape`

	finding := parseRemoteResponse(content)

	if finding.Label != model.LabelSupported {
		t.Errorf("Label = %s, want supported", finding.Label)
	}
	if finding.Similarity != 0.85 {
		t.Errorf("Similarity = %v, want 0.85", finding.Similarity)
	}
	if len(finding.Evidence) != 2 {
		t.Fatalf("got %d evidence entries, want 2", len(finding.Evidence))
	}
	if finding.Evidence[0].Source != "https://nasa.example.gov/earth" {
		t.Errorf("first source = %q", finding.Evidence[0].Source)
	}
	if finding.Evidence[1].Source != "https://esa.example.int/shape" {
		t.Errorf("second source = %q", finding.Evidence[1].Source)
	}
}

func TestParseRemoteResponse_Refuted(t *testing.T) {
	content := `VERDICT: Refuted
EVIDENCE: The claim has been widely debunked.
SOURCES: none`

	finding := parseRemoteResponse(content)

	if finding.Label != model.LabelRefuted {
		t.Errorf("Label = %s, want refuted", finding.Label)
	}
	if len(finding.Evidence) != 1 {
		t.Fatalf("got %d evidence entries, want 1", len(finding.Evidence))
	}
	if finding.Evidence[0].Source != "" {
		t.Errorf("Source = %q, want empty for SOURCES: none", finding.Evidence[0].Source)
	}
}

func TestParseRemoteResponse_Unknown(t *testing.T) {
	finding := parseRemoteResponse("VERDICT: Unknown\nEVIDENCE: Could not find anything.\nSOURCES: none")
	if finding.Label != model.LabelNotEnoughEvidence {
		t.Errorf("Label = %s, want not_enough_evidence", finding.Label)
	}
	if finding.Similarity != 0 {
		t.Errorf("Similarity = %v, want 0 for unknown verdict", finding.Similarity)
	}
}

func TestParseRemoteResponse_OffProtocol(t *testing.T) {
	finding := parseRemoteResponse("I'm sorry, I can't help with that request.")
	if finding.Label != model.LabelNotEnoughEvidence {
		t.Errorf("Label = %s, want not_enough_evidence for off-protocol reply", finding.Label)
	}
	if len(finding.Evidence) != 0 {
		t.Errorf("Evidence = %v, want none", finding.Evidence)
	}
}

func TestParseRemoteResponse_CaseInsensitivePrefixes(t *testing.T) {
	finding := parseRemoteResponse("verdict: supported\nevidence: Confirmed by records.\nsources: none")
	if finding.Label != model.LabelSupported {
		t.Errorf("Label = %s, want supported from lowercase prefixes", finding.Label)
	}
}
