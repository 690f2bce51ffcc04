package model

import (
	"math"
	"testing"
)

func TestClaim_Key(t *testing.T) {
	a := Claim{Text: "The Earth  is FLAT."}
	b := Claim{Text: "the earth is flat."}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() != "the earth is flat." {
		t.Errorf("Key() = %q", a.Key())
	}
}

func TestReport_Citations(t *testing.T) {
	r := &Report{
		Claims: []Verdict{
			{Evidence: []Evidence{
				{Snippet: "x", Source: "https://a.example.org"},
				{Snippet: "y", Source: "https://b.example.org"},
			}},
			{Evidence: []Evidence{
				{Snippet: "z", Source: "https://a.example.org"}, // Duplicate
				{Snippet: "w"}, // No source
			}},
		},
	}
	got := r.Citations()
	want := []string{"https://a.example.org", "https://b.example.org"}
	if len(got) != len(want) {
		t.Fatalf("Citations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("citation %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultConfig_OrdersEndWithLocalKB(t *testing.T) {
	cfg := DefaultConfig()
	for _, mode := range []Mode{ModeFactCheck, ModeNews, ModePhishing} {
		order, ok := cfg.Verify.Orders[mode]
		if !ok {
			t.Errorf("mode %s has no verifier order", mode)
			continue
		}
		if len(order) == 0 || order[len(order)-1] != VerifierLocalKB {
			t.Errorf("mode %s order %v does not end with local_kb", mode, order)
		}
	}
}

func TestDefaultConfig_ScoreWeights(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Score.ClaimWeight != 0.4 || cfg.Score.SignalWeight != 0.6 {
		t.Errorf("blend weights = %v/%v, want 0.4/0.6",
			cfg.Score.ClaimWeight, cfg.Score.SignalWeight)
	}
	if cfg.Score.NeutralClaim != 50 {
		t.Errorf("NeutralClaim = %v, want 50", cfg.Score.NeutralClaim)
	}

	var sum float64
	for _, w := range cfg.Score.SignalWeights {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("signal weights sum to %v, want 1", sum)
	}
}
