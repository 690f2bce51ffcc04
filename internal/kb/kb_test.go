package kb

import (
	"strings"
	"testing"
)

func TestLoad_EmbeddedCorpus(t *testing.T) {
	k, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if k.Len() == 0 {
		t.Fatal("embedded corpus produced no passages")
	}

	sections := k.Sections()
	for _, want := range []string{
		"vaccines", "elections", "financial-scams", "deepfakes",
		"urgency-patterns", "health-misinformation", "general-fact-checking",
	} {
		found := false
		for _, s := range sections {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("section %q missing from corpus", want)
		}
	}
}

func TestParse_SectionsAndIDs(t *testing.T) {
	corpus := `# Title

Preamble paragraph that belongs to the general section.

## alpha

First alpha passage about satellites.

Second alpha passage about orbits.

## beta

Beta passage about tides.
`
	k, err := Parse(corpus)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantIDs := map[string]bool{
		"kb:general#0": true,
		"kb:alpha#0":   true,
		"kb:alpha#1":   true,
		"kb:beta#0":    true,
	}
	for _, p := range k.passages {
		if !wantIDs[p.ID] {
			t.Errorf("unexpected passage ID %q", p.ID)
		}
		delete(wantIDs, p.ID)
	}
	for id := range wantIDs {
		t.Errorf("passage %q not produced", id)
	}
}

func TestParse_EmptyCorpusRejected(t *testing.T) {
	if _, err := Parse("# Nothing here\n"); err == nil {
		t.Fatal("expected error for corpus without passages")
	}
}

func TestParse_LongParagraphChunked(t *testing.T) {
	sentence := "This sentence pads the paragraph with repeated measurable content. "
	corpus := "## long\n\n" + strings.Repeat(sentence, 12) + "\n"

	k, err := Parse(corpus)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if k.Len() < 2 {
		t.Fatalf("long paragraph produced %d passages, want chunking", k.Len())
	}
	for _, p := range k.passages {
		if len(p.Text) > maxPassageChars {
			t.Errorf("passage %s has %d chars, exceeds cap", p.ID, len(p.Text))
		}
	}
}

func TestSearch_RanksRelevantPassageFirst(t *testing.T) {
	k, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	matches := k.Search("The Earth is flat", 5)
	if len(matches) == 0 {
		t.Fatal("no matches for a corpus topic")
	}
	if matches[0].Passage.Section != "general-fact-checking" {
		t.Errorf("top section = %q, want general-fact-checking", matches[0].Passage.Section)
	}
	if matches[0].Score < 0.20 {
		t.Errorf("top score = %v, want at least the retrieval floor", matches[0].Score)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatal("matches not sorted by score")
		}
	}
}

func TestSearch_OffCorpusQueryScoresLow(t *testing.T) {
	k, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	matches := k.Search("Water boils at 100 degrees Celsius at sea level", 5)
	for _, m := range matches {
		if m.Score >= 0.20 {
			t.Errorf("off-corpus query matched %s at %v, want below the floor", m.Passage.ID, m.Score)
		}
	}
}

func TestSearch_StopwordOnlyQuery(t *testing.T) {
	k, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if matches := k.Search("the of and is", 5); len(matches) != 0 {
		t.Errorf("stopword-only query returned %d matches", len(matches))
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The Earth is flat, and 5G causes harm!")
	want := []string{"earth", "flat", "5g", "causes", "harm"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}
