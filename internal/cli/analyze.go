package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/pipeline"
)

var (
	analyzeMode string
	inputFile   string
	inputURL    string
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze text, a file, or a URL for trustworthiness",
	Long: `Analyze runs the full pipeline over one input:
- Extract up to 6 atomic factual claims
- Verify each claim through the configured backend chain
- Run misinformation, social engineering, AI-text, and phishing detectors
- Blend claim verdicts and signals into a confidence score

The input is the first argument, or --file, or --url, or stdin when no
argument is given.

Example:
  clarion analyze "The Earth is flat."
  clarion analyze --url https://example.com/article --mode news
  clarion analyze --file message.txt --mode phishing --json report.json
  cat message.txt | clarion analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", string(model.ModeFactCheck), "analysis mode: fact_check, news, or phishing")
	analyzeCmd.Flags().StringVar(&inputFile, "file", "", "read input text from a file")
	analyzeCmd.Flags().StringVar(&inputURL, "url", "", "fetch and analyze a URL")

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Clarion/0.1 (+https://github.com/clarionhq/clarion)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read when fetching URLs")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the search result cache")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure-tls", false, "skip TLS certificate verification when fetching URLs")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	mode := model.Mode(analyzeMode)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	var report *model.Report
	switch {
	case inputURL != "":
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", inputURL)
		}
		report, err = p.AnalyzeURL(ctx, inputURL, mode)
	default:
		var input string
		input, err = readInput(args)
		if err != nil {
			return err
		}
		report, err = p.Analyze(ctx, input, mode)
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n", len(report.Claims))
		fmt.Fprintf(os.Stderr, "✓ Ran %d signal detectors\n", len(report.Signals))
		fmt.Fprintf(os.Stderr, "✓ Confidence: %.0f/100\n", report.Confidence)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// buildConfig applies CLI flags and environment on top of the defaults
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	cfg.Remote.APIKey = os.Getenv("OPENAI_API_KEY")
	if baseURL := os.Getenv("CLARION_REMOTE_BASE_URL"); baseURL != "" {
		cfg.Remote.BaseURL = baseURL
	}
	if classifier := os.Getenv("CLARION_CLASSIFIER_URL"); classifier != "" {
		cfg.Classifier.BaseURL = classifier
	}
	return cfg
}

// readInput resolves the text input: positional argument, --file, or stdin
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input: pass text as an argument, --file, --url, or pipe to stdin")
}
