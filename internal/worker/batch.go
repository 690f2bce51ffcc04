package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clarionhq/clarion/internal/model"
)

// Analyzer abstracts the analysis pipeline for batch runs
type Analyzer interface {
	Analyze(ctx context.Context, text string, mode model.Mode) (*model.Report, error)
	AnalyzeURL(ctx context.Context, url string, mode model.Mode) (*model.Report, error)
}

// AnalysisJob analyzes one input line. A line that parses as an http(s)
// URL is fetched; anything else is treated as inline text.
type AnalysisJob struct {
	Input    string
	Mode     model.Mode
	Analyzer Analyzer
}

// AnalysisResult pairs an input with its report or failure
type AnalysisResult struct {
	Input  string
	Report *model.Report
	Error  error
}

// Err implements Result.
func (r *AnalysisResult) Err() error { return r.Error }

// Execute implements Job.
func (j *AnalysisJob) Execute(ctx context.Context) Result {
	var report *model.Report
	var err error
	if isURL(j.Input) {
		report, err = j.Analyzer.AnalyzeURL(ctx, j.Input, j.Mode)
	} else {
		report, err = j.Analyzer.Analyze(ctx, j.Input, j.Mode)
	}
	return &AnalysisResult{Input: j.Input, Report: report, Error: err}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// BatchProcessor analyzes many inputs concurrently. One input's failure
// is recorded in its result and never stops the batch.
type BatchProcessor struct {
	analyzer    Analyzer
	mode        model.Mode
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, mode model.Mode, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		mode:        mode,
		concurrency: concurrency,
	}
}

// Process analyzes the inputs concurrently
func (b *BatchProcessor) Process(ctx context.Context, inputs []string) []*AnalysisResult {
	if len(inputs) == 0 {
		return []*AnalysisResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&AnalysisJob{Input: input, Mode: b.mode, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	out := make([]*AnalysisResult, len(results))
	for i, r := range results {
		out[i] = r.(*AnalysisResult)
	}
	return out
}

// ProcessFile analyzes the inputs listed in a file, one per line
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*AnalysisResult, error) {
	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return b.Process(ctx, inputs), nil
}

// ReadInputsFromFile reads one input per line, skipping blanks, comments,
// and duplicates.
func ReadInputsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return inputs, nil
}
