package signal

import (
	"context"
	"testing"

	"github.com/clarionhq/clarion/internal/model"
)

const scamText = `URGENT: Your account will be suspended within 24 hours!
Dear customer, verify your identity now. Enter your password at
http://secure-login.example.com or act immediately to avoid closure.`

const plainText = `The city council met on Tuesday to review the annual budget.
Members discussed road maintenance and approved funding for two new parks.
The next session is scheduled for early October.`

func TestSuite_RunsAllDetectorsByDefault(t *testing.T) {
	suite := DefaultSuite(model.ClassifierConfig{})
	results := suite.Detect(context.Background(), plainText, nil)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 rule-based detectors", len(results))
	}
	want := []model.SignalKind{
		model.SignalMisinformation,
		model.SignalSocialEngineering,
		model.SignalAIGenerated,
	}
	for i, kind := range want {
		if results[i].Kind != kind {
			t.Fatalf("results[%d].Kind = %q, want %q", i, results[i].Kind, kind)
		}
	}
}

func TestSuite_RequestedSubsetDoesNotChangeScores(t *testing.T) {
	suite := DefaultSuite(model.ClassifierConfig{})
	ctx := context.Background()

	all := suite.Detect(ctx, scamText, nil)
	only := suite.Detect(ctx, scamText, []model.SignalKind{model.SignalSocialEngineering})

	if len(only) != 1 || only[0].Kind != model.SignalSocialEngineering {
		t.Fatalf("subset run returned %v", only)
	}
	for _, r := range all {
		if r.Kind == model.SignalSocialEngineering && r.Score != only[0].Score {
			t.Fatalf("subset score %v differs from full-run score %v", only[0].Score, r.Score)
		}
	}
}

func TestSuite_UnknownKindIgnored(t *testing.T) {
	suite := DefaultSuite(model.ClassifierConfig{})
	results := suite.Detect(context.Background(), plainText, []model.SignalKind{model.SignalPhishing})
	if len(results) != 0 {
		t.Fatalf("got %d results for unregistered detector, want 0", len(results))
	}
}

func TestSocialEngineering_UrgencySaturation(t *testing.T) {
	r := NewSocialEngineering().Detect(context.Background(), scamText)
	if r.Score <= 0.7 {
		t.Fatalf("Score = %v, want above 0.7 for saturated scam text", r.Score)
	}
	if len(r.Triggers) == 0 {
		t.Fatal("expected triggers explaining the score")
	}
}

func TestSocialEngineering_PlainTextLow(t *testing.T) {
	r := NewSocialEngineering().Detect(context.Background(), plainText)
	if r.Score > 0.2 {
		t.Fatalf("Score = %v, want near zero for plain news text", r.Score)
	}
}

func TestMisinformation_SensationalText(t *testing.T) {
	input := `SHOCKING TRUTH they don't want you to know!!! Doctors HATE this
one weird trick. Share before it's deleted! Wake up, sheeple!`
	r := NewMisinformation().Detect(context.Background(), input)
	if r.Score < 0.5 {
		t.Fatalf("Score = %v, want at least 0.5 for sensational text", r.Score)
	}
}

func TestMisinformation_PlainTextLow(t *testing.T) {
	r := NewMisinformation().Detect(context.Background(), plainText)
	if r.Score > 0.2 {
		t.Fatalf("Score = %v, want near zero for plain news text", r.Score)
	}
}

func TestAIText_EmptyInputZero(t *testing.T) {
	r := NewAIText().Detect(context.Background(), "   ")
	if r.Score != 0 {
		t.Fatalf("Score = %v, want 0 for empty input", r.Score)
	}
}

func TestDetectors_ScoresStayInRange(t *testing.T) {
	inputs := []string{scamText, plainText, "x", ""}
	detectors := []Detector{NewMisinformation(), NewSocialEngineering(), NewAIText()}
	for _, d := range detectors {
		for _, in := range inputs {
			r := d.Detect(context.Background(), in)
			if r.Score < 0 || r.Score > 1 {
				t.Fatalf("%s score %v out of range for %q", d.Kind(), r.Score, in)
			}
		}
	}
}
