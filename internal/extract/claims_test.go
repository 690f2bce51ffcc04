package extract

import (
	"strings"
	"testing"
)

func TestExtract_TwoDeclarativeSentences(t *testing.T) {
	e := NewClaimExtractor()
	input := "The Earth is flat. The Moon landing was staged."

	claims := e.Extract(input)
	if len(claims) != 2 {
		t.Fatalf("got %d claims, want 2: %v", len(claims), claims)
	}
	if claims[0].Text != "The Earth is flat." {
		t.Errorf("claims[0] = %q", claims[0].Text)
	}
	if claims[1].Text != "The Moon landing was staged." {
		t.Errorf("claims[1] = %q", claims[1].Text)
	}
	for i, c := range claims {
		if c.Index != i {
			t.Errorf("claims[%d].Index = %d", i, c.Index)
		}
	}
}

func TestExtract_EmptyInputYieldsZeroClaims(t *testing.T) {
	e := NewClaimExtractor()
	for _, input := range []string{"", "   ", "\n\t\n"} {
		if claims := e.Extract(input); len(claims) != 0 {
			t.Errorf("Extract(%q) = %v, want none", input, claims)
		}
	}
}

func TestExtract_QuestionsAndExclamationsDropped(t *testing.T) {
	e := NewClaimExtractor()
	input := "Is the Earth flat? Wow, amazing stuff! The Earth is an oblate spheroid."

	claims := e.Extract(input)
	if len(claims) != 1 {
		t.Fatalf("got %d claims, want 1: %v", len(claims), claims)
	}
	if !strings.Contains(claims[0].Text, "oblate spheroid") {
		t.Errorf("claims[0] = %q", claims[0].Text)
	}
}

func TestExtract_OpinionSentencesDropped(t *testing.T) {
	e := NewClaimExtractor()
	input := "I think mornings feel nicer than evenings. The unemployment rate fell to 3.9% last month."

	claims := e.Extract(input)
	if len(claims) != 1 {
		t.Fatalf("got %d claims, want 1: %v", len(claims), claims)
	}
	if !strings.Contains(claims[0].Text, "3.9%") {
		t.Errorf("claims[0] = %q", claims[0].Text)
	}
}

func TestExtract_CapsAtSixClaims(t *testing.T) {
	e := NewClaimExtractor()
	input := strings.Join([]string{
		"The first measurement was 10 meters.",
		"The second measurement was 20 meters.",
		"The third measurement was 30 meters.",
		"The fourth measurement was 40 meters.",
		"The fifth measurement was 50 meters.",
		"The sixth measurement was 60 meters.",
		"The seventh measurement was 70 meters.",
		"The eighth measurement was 80 meters.",
	}, " ")

	claims := e.Extract(input)
	if len(claims) != MaxClaims {
		t.Fatalf("got %d claims, want cap of %d", len(claims), MaxClaims)
	}
	// Document order wins: the first six sentences survive.
	if !strings.Contains(claims[0].Text, "first") || !strings.Contains(claims[5].Text, "sixth") {
		t.Errorf("cap did not keep document order: %v", claims)
	}
}

func TestExtract_HedgedOpinionsWithCapitalizedOpenerDropped(t *testing.T) {
	e := NewClaimExtractor()
	// The capitalized first word of a sentence must not count as a
	// factual anchor for a hedged opinion.
	inputs := []string{
		"Personally I believe this movie is the best thing ever made.",
		"In my opinion the soup tastes better cold.",
		"Honestly it seems like mornings are nicer than evenings probably.",
	}
	for _, input := range inputs {
		if claims := e.Extract(input); len(claims) != 0 {
			t.Errorf("Extract(%q) = %v, want none", input, claims)
		}
	}
}

func TestExtract_HedgedSentenceWithEntityKept(t *testing.T) {
	e := NewClaimExtractor()
	// A mid-sentence proper noun anchors the sentence as checkable even
	// under a hedge.
	claims := e.Extract("Perhaps NASA staged the whole landing program.")
	if len(claims) != 1 {
		t.Fatalf("got %d claims, want 1: %v", len(claims), claims)
	}
	if claims[0].Heuristic != "entity" {
		t.Errorf("Heuristic = %q, want entity", claims[0].Heuristic)
	}
}

func TestExtract_MergesLeadingConjunction(t *testing.T) {
	e := NewClaimExtractor()
	input := "The company reported record revenue this quarter. But its operating costs were higher than forecast."

	claims := e.Extract(input)
	if len(claims) != 1 {
		t.Fatalf("got %d claims, want merged single claim: %v", len(claims), claims)
	}
	if !strings.Contains(claims[0].Text, "record revenue") || !strings.Contains(claims[0].Text, "operating costs") {
		t.Errorf("merged claim = %q", claims[0].Text)
	}
}

func TestExtract_DeduplicatesClaims(t *testing.T) {
	e := NewClaimExtractor()
	input := "The Earth is flat. The  earth is FLAT. The Moon landing was staged."

	claims := e.Extract(input)
	if len(claims) != 2 {
		t.Fatalf("got %d claims, want case-insensitive dedupe to 2: %v", len(claims), claims)
	}
}

func TestExtract_FallbackKeepsDeclarativeInput(t *testing.T) {
	e := NewClaimExtractor()
	// No strong verbs, numbers, or capitalized entities mid-sentence, but
	// still declarative content.
	input := "morning fog settled over the quiet harbor town."

	claims := e.Extract(input)
	if len(claims) == 0 {
		t.Fatal("declarative input yielded zero claims")
	}
	if claims[0].Heuristic != "fallback" {
		t.Errorf("Heuristic = %q, want fallback", claims[0].Heuristic)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewClaimExtractor()
	input := "The Earth is flat. But NASA keeps publishing satellite photos. The Moon landing was staged."

	first := e.Extract(input)
	if len(first) == 0 {
		t.Fatal("no claims extracted")
	}

	// Re-extracting each claim's own text must return that claim unchanged.
	for _, c := range first {
		again := e.Extract(c.Text)
		if len(again) != 1 {
			t.Fatalf("re-extract of %q gave %d claims: %v", c.Text, len(again), again)
		}
		if again[0].Text != c.Text {
			t.Errorf("re-extract changed claim: %q -> %q", c.Text, again[0].Text)
		}
	}
}

func TestExtract_ShortFragmentsDropped(t *testing.T) {
	e := NewClaimExtractor()
	if claims := e.Extract("Yes it is."); len(claims) != 0 {
		t.Errorf("short fragment produced claims: %v", claims)
	}
}
