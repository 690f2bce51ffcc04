package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clarionhq/clarion/internal/model"
)

type mockAnalyzer struct {
	failOn string
}

func (m *mockAnalyzer) Analyze(_ context.Context, text string, mode model.Mode) (*model.Report, error) {
	time.Sleep(5 * time.Millisecond)
	if text == m.failOn {
		return nil, errors.New("analysis failed")
	}
	return &model.Report{Mode: mode, Confidence: 80}, nil
}

func (m *mockAnalyzer) AnalyzeURL(_ context.Context, url string, mode model.Mode) (*model.Report, error) {
	time.Sleep(5 * time.Millisecond)
	return &model.Report{Mode: mode, SourceURL: url, Confidence: 80}, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	b := NewBatchProcessor(&mockAnalyzer{}, model.ModeFactCheck, 2)

	inputs := []string{
		"The sky is blue.",
		"https://example.com/article",
		"Water is wet.",
	}
	results := b.Process(context.Background(), inputs)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	urlResults := 0
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("unexpected error for %q: %v", r.Input, r.Error)
			continue
		}
		if r.Report == nil {
			t.Errorf("nil report for %q", r.Input)
			continue
		}
		if r.Report.SourceURL != "" {
			urlResults++
		}
	}
	if urlResults != 1 {
		t.Errorf("got %d URL results, want 1", urlResults)
	}
}

func TestBatchProcessor_OneFailureDoesNotStopBatch(t *testing.T) {
	b := NewBatchProcessor(&mockAnalyzer{failOn: "bad input"}, model.ModeFactCheck, 2)

	results := b.Process(context.Background(), []string{"good input", "bad input", "another good"})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want exactly 1", failures)
	}
}

func TestReadInputsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	content := `# batch inputs
The first claim.

The first claim.
https://example.com/a
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("ReadInputsFromFile: %v", err)
	}
	want := []string{"The first claim.", "https://example.com/a"}
	if len(inputs) != len(want) {
		t.Fatalf("inputs = %v, want %v", inputs, want)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], want[i])
		}
	}
}

func TestReadInputsFromFile_Missing(t *testing.T) {
	if _, err := ReadInputsFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
