package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/clarionhq/clarion/internal/model"
)

// Renderer writes reports as JSON, Markdown, and a console summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return os.WriteFile(path, []byte(r.Markdown(report)), 0o644)
}

// Markdown renders the report body
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Trustworthiness Report\n\n")
	if report.SourceURL != "" {
		fmt.Fprintf(&b, "**Source:** %s\n\n", report.SourceURL)
	}
	fmt.Fprintf(&b, "**Mode:** %s  \n", report.Mode)
	fmt.Fprintf(&b, "**Analyzed:** %s  \n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Confidence:** %.0f / 100 (%s)\n\n", report.Confidence, confidenceBand(report.Confidence))

	if len(report.Summary) > 0 {
		b.WriteString("## Why\n\n")
		for _, reason := range report.Summary {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Claims\n\n")
	if len(report.Claims) == 0 {
		b.WriteString("No verifiable factual claims were found.\n\n")
	} else {
		fmt.Fprintf(&b, "%d supported, %d refuted, %d unverifiable.\n\n",
			report.CorrectCount, report.IncorrectCount, report.UnverifiableCount)
		for _, v := range report.Claims {
			fmt.Fprintf(&b, "### %d. %s\n\n", v.Claim.Index+1, v.Claim.Text)
			fmt.Fprintf(&b, "**Verdict:** %s", verdictLabel(v.Label))
			if v.VerifierUsed != "" {
				fmt.Fprintf(&b, " (via %s)", v.VerifierUsed)
			}
			b.WriteString("\n\n")
			for _, ev := range v.Evidence {
				if ev.Snippet != "" {
					fmt.Fprintf(&b, "> %s\n", ev.Snippet)
					if ev.Source != "" {
						fmt.Fprintf(&b, "> — %s\n", ev.Source)
					}
					b.WriteString("\n")
				}
			}
			if failures := failureTrail(v); failures != "" {
				fmt.Fprintf(&b, "_Fallbacks: %s_\n\n", failures)
			}
		}
	}

	b.WriteString("## Signals\n\n")
	b.WriteString("| Signal | Score | Triggers |\n")
	b.WriteString("|--------|-------|----------|\n")
	for _, sig := range report.Signals {
		fmt.Fprintf(&b, "| %s | %.0f%% | %s |\n",
			sig.Kind, sig.Score*100, strings.Join(sig.Triggers, "; "))
	}
	b.WriteString("\n")

	if citations := report.Citations(); len(citations) > 0 {
		b.WriteString("## Sources\n\n")
		for _, c := range citations {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by Clarion. Scores are heuristic; verify important claims independently.\n")
	}

	return b.String()
}

// RenderSummary prints a short console summary
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\nConfidence: %.0f/100 (%s)\n", report.Confidence, confidenceBand(report.Confidence))
	fmt.Printf("Claims: %d supported, %d refuted, %d unverifiable\n",
		report.CorrectCount, report.IncorrectCount, report.UnverifiableCount)
	for _, sig := range report.Signals {
		if sig.Score >= 0.30 {
			fmt.Printf("Signal: %s at %.0f%%\n", sig.Kind, sig.Score*100)
		}
	}
	if len(report.Summary) > 0 {
		fmt.Printf("Top reason: %s\n", report.Summary[0])
	}
}

func confidenceBand(confidence float64) string {
	switch {
	case confidence >= 75:
		return "likely trustworthy"
	case confidence >= 50:
		return "mixed"
	case confidence >= 25:
		return "questionable"
	default:
		return "likely untrustworthy"
	}
}

func verdictLabel(label model.Label) string {
	switch label {
	case model.LabelSupported:
		return "Supported"
	case model.LabelRefuted:
		return "Refuted"
	default:
		return "Not enough evidence"
	}
}

// failureTrail formats the failed attempts that preceded the verdict
func failureTrail(v model.Verdict) string {
	var parts []string
	for _, a := range v.Attempted {
		if a.Failure != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", a.Verifier, a.Failure))
		}
	}
	return strings.Join(parts, ", ")
}
