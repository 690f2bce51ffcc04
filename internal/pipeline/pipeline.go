// Package pipeline sequences one analysis: normalize, extract claims, run
// signal detectors, verify each claim, score, and assemble the report.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clarionhq/clarion/internal/cache"
	"github.com/clarionhq/clarion/internal/extract"
	"github.com/clarionhq/clarion/internal/kb"
	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/score"
	"github.com/clarionhq/clarion/internal/signal"
	"github.com/clarionhq/clarion/internal/text"
	"github.com/clarionhq/clarion/internal/verify"
)

// Pipeline orchestrates the complete analysis
type Pipeline struct {
	fetcher      *Fetcher
	extractor    *extract.ClaimExtractor
	suite        *signal.Suite
	orchestrator *verify.Orchestrator
	scorer       *score.Scorer
	renderer     *Renderer
	config       *model.Config
}

// NewPipeline wires the analysis components from configuration. The remote
// verifier joins the backend set only when an API key is configured; the
// local KB always loads, so every verifier order keeps its terminal
// fallback.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	store, err := kb.Load()
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	var searchCache cache.Cache
	if cfg.Cache.Enabled {
		searchCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	verifiers := []verify.Verifier{
		verify.NewLocalKB(store, cfg.Verify.SimilarityMin),
		verify.NewWebSearch(cfg.Search, cfg.HTTP, searchCache),
	}
	if cfg.Remote.APIKey != "" {
		remote, err := verify.NewRemote(cfg.Remote)
		if err != nil {
			return nil, fmt.Errorf("remote verifier: %w", err)
		}
		verifiers = append(verifiers, remote)
	}

	return &Pipeline{
		fetcher:      NewFetcher(cfg.HTTP),
		extractor:    extract.NewClaimExtractor(),
		suite:        signal.DefaultSuite(cfg.Classifier),
		orchestrator: verify.NewOrchestrator(verifiers...),
		scorer:       score.NewScorer(cfg.Score),
		renderer:     NewRenderer(cfg.Output.IncludeFooter),
		config:       cfg,
	}, nil
}

// NewPipelineWith wires a pipeline from pre-built components. Used by tests
// and by callers that substitute backends.
func NewPipelineWith(cfg *model.Config, orch *verify.Orchestrator, suite *signal.Suite) *Pipeline {
	return &Pipeline{
		fetcher:      NewFetcher(cfg.HTTP),
		extractor:    extract.NewClaimExtractor(),
		suite:        suite,
		orchestrator: orch,
		scorer:       score.NewScorer(cfg.Score),
		renderer:     NewRenderer(cfg.Output.IncludeFooter),
		config:       cfg,
	}
}

// Analyze runs the full pipeline over raw text. Empty or non-declarative
// input degrades to a zero-claim report scored on signals alone; it is not
// an error. A single claim's verification failure never aborts the others.
func (p *Pipeline) Analyze(ctx context.Context, input string, mode model.Mode) (*model.Report, error) {
	if mode == "" {
		mode = model.ModeFactCheck
	}
	order, ok := p.config.Verify.Orders[mode]
	if !ok {
		return nil, fmt.Errorf("unknown analysis mode %q", mode)
	}

	cleaned := text.Clean(input)

	report := &model.Report{
		Mode:       mode,
		AnalyzedAt: time.Now().UTC(),
	}

	// Detectors run on the cleaned text even when no claims come out of it
	report.Signals = p.suite.Detect(ctx, cleaned, nil)

	claims := p.extractor.Extract(cleaned)
	report.Claims = p.verifyAll(ctx, claims, order)

	p.scorer.Score(report)
	return report, nil
}

// AnalyzeURL fetches the URL and analyzes its visible text
func (p *Pipeline) AnalyzeURL(ctx context.Context, rawURL string, mode model.Mode) (*model.Report, error) {
	fetched, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	report, err := p.Analyze(ctx, fetched.Text, mode)
	if err != nil {
		return nil, err
	}
	report.SourceURL = fetched.FinalURL
	return report, nil
}

// verifyAll checks claims concurrently under a worker cap and returns
// verdicts in extraction order.
func (p *Pipeline) verifyAll(ctx context.Context, claims []model.Claim, order []model.VerifierKind) []model.Verdict {
	if len(claims) == 0 {
		return nil
	}

	workers := p.config.Verify.ClaimWorkers
	if workers < 1 {
		workers = 1
	}

	verdicts := make([]model.Verdict, len(claims))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, claim := range claims {
		wg.Add(1)
		go func(i int, claim model.Claim) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			verdicts[i] = p.orchestrator.VerifyClaim(ctx, claim, order)
		}(i, claim)
	}
	wg.Wait()

	return verdicts
}

// RenderReport writes the report to the requested outputs and prints the
// console summary.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}
	p.renderer.RenderSummary(report)
	return nil
}
