package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/text"
)

// Line protocol the remote assistant is instructed to answer with. Keeping
// it rigid makes parsing trivial and hallucinated prose easy to discard.
const remoteSystemPrompt = `You are a fact-checker. For each claim you receive, use your knowledge to determine whether it is supported, refuted, or unknown. Respond with EXACTLY these three lines (nothing else):
VERDICT: Supported OR Refuted OR Unknown
EVIDENCE: One short sentence summarizing what you found.
SOURCES: Optional URLs or 'none'.`

// Remote verifies claims through an external chat-completion fact-check
// assistant. Network and auth failures surface as Unavailable; exceeding
// the bounded wait surfaces as Timeout.
type Remote struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewRemote creates the remote adapter. The API key is required; the base
// URL is optional for self-hosted compatible endpoints.
func NewRemote(cfg model.RemoteConfig) (*Remote, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("remote verifier requires an API key")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	return &Remote{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

// Kind implements Verifier.
func (v *Remote) Kind() model.VerifierKind { return model.VerifierRemote }

// Verify sends the claim to the assistant and maps its structured response
// to a verdict fragment.
func (v *Remote) Verify(ctx context.Context, claim model.Claim) (*Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: v.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: remoteSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Fact-check this claim: %q", claim.Text)},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	}

	resp, err := v.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, timeout(v.Kind(), err)
		}
		return nil, unavailable(v.Kind(), err)
	}
	if len(resp.Choices) == 0 {
		return nil, unavailable(v.Kind(), fmt.Errorf("empty response"))
	}

	return parseRemoteResponse(resp.Choices[0].Message.Content), nil
}

// parseRemoteResponse maps the VERDICT/EVIDENCE/SOURCES lines to a Finding.
// Anything off-protocol degrades to NotEnoughEvidence.
func parseRemoteResponse(content string) *Finding {
	label := model.LabelNotEnoughEvidence
	var snippet string
	var sources []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "VERDICT:"):
			raw := strings.ToLower(strings.TrimSpace(line[len("VERDICT:"):]))
			switch {
			case strings.Contains(raw, "support"):
				label = model.LabelSupported
			case strings.Contains(raw, "refut"), strings.Contains(raw, "false"):
				label = model.LabelRefuted
			}
		case strings.HasPrefix(upper, "EVIDENCE:"):
			snippet = strings.TrimSpace(line[len("EVIDENCE:"):])
		case strings.HasPrefix(upper, "SOURCES:"):
			raw := strings.TrimSpace(line[len("SOURCES:"):])
			if !strings.EqualFold(raw, "none") {
				sources = text.ExtractURLs(raw)
			}
		}
	}

	finding := &Finding{Label: label}
	if label != model.LabelNotEnoughEvidence {
		finding.Similarity = 0.85
	}
	if snippet != "" {
		ev := model.Evidence{Snippet: snippet, Verifier: model.VerifierRemote}
		if len(sources) > 0 {
			ev.Source = sources[0]
		}
		finding.Evidence = append(finding.Evidence, ev)
	}
	for i, src := range sources {
		if i == 0 && snippet != "" {
			continue // Already attached to the evidence sentence
		}
		finding.Evidence = append(finding.Evidence, model.Evidence{
			Source:   src,
			Verifier: model.VerifierRemote,
		})
	}
	return finding
}
