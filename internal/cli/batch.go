package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/pipeline"
	"github.com/clarionhq/clarion/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchMode    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple inputs from a file in parallel",
	Long: `Batch analyzes many inputs concurrently:
- Read inputs from a file, one per line (URLs are fetched, anything else
  is treated as inline text)
- Analyze inputs in parallel with a configurable worker count
- Write an individual JSON report per input

Example:
  clarion batch inputs.txt
  clarion batch urls.txt --mode news --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clarion-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchMode, "mode", string(model.ModeFactCheck), "analysis mode: fact_check, news, or phishing")

	batchCmd.Flags().StringVar(&userAgent, "ua", "Clarion/0.1 (+https://github.com/clarionhq/clarion)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the search result cache")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.BatchWorkers = concurrency

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	processor := worker.NewBatchProcessor(p, model.Mode(batchMode), concurrency)

	start := time.Now()
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	succeeded, failed := 0, 0
	for i, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Input, result.Error)
			continue
		}
		succeeded++
		path := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", i+1))
		if err := renderer.RenderJSON(result.Report, path); err != nil {
			fmt.Fprintf(os.Stderr, "✗ write %s: %v\n", path, err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s (confidence %.0f)\n",
				result.Input, path, result.Report.Confidence)
		}
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d succeeded, %d failed in %v\n",
		succeeded, failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 && succeeded == 0 {
		return fmt.Errorf("all %d inputs failed", failed)
	}
	return nil
}
