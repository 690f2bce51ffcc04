package signal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/text"
)

const classifierMaxURLs = 3

// PhishingClassifier calls a pretrained phishing/scam classifier over HTTP.
// The model is a black box: the contract is text in, probability and label
// out. An unreachable classifier degrades the signal to zero with a
// diagnostic trigger; it never fails the analysis.
type PhishingClassifier struct {
	httpClient *http.Client
	baseURL    string
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"` // "phishing" or "legitimate"
	Score float64 `json:"score"` // Phishing probability, 0-1
}

// NewPhishingClassifier creates the classifier client
func NewPhishingClassifier(cfg model.ClassifierConfig) *PhishingClassifier {
	return &PhishingClassifier{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Kind implements Detector.
func (d *PhishingClassifier) Kind() model.SignalKind { return model.SignalPhishing }

// Detect classifies the message text and, separately, each URL it contains
// (URL phishing often scores higher than the surrounding message). The
// signal score is the maximum across all classifications.
func (d *PhishingClassifier) Detect(ctx context.Context, input string) model.SignalResult {
	result := model.SignalResult{Kind: d.Kind()}
	if strings.TrimSpace(input) == "" {
		return result
	}
	if d.baseURL == "" {
		result.Triggers = []string{"classifier not configured"}
		return result
	}

	resp, err := d.classify(ctx, input)
	if err != nil {
		result.Triggers = []string{fmt.Sprintf("classifier unavailable: %v", err)}
		return result
	}
	result.Score = clamp01(resp.Score)
	result.Triggers = []string{fmt.Sprintf("message: %s (%.2f)", resp.Label, resp.Score)}

	urls := text.ExtractURLs(input)
	if len(urls) > classifierMaxURLs {
		urls = urls[:classifierMaxURLs]
	}
	for _, u := range urls {
		urlResp, err := d.classify(ctx, u)
		if err != nil {
			continue
		}
		if urlResp.Score > result.Score {
			result.Score = clamp01(urlResp.Score)
		}
		result.Triggers = append(result.Triggers, fmt.Sprintf("url %s: %s (%.2f)", u, urlResp.Label, urlResp.Score))
	}
	return result
}

func (d *PhishingClassifier) classify(ctx context.Context, input string) (*classifyResponse, error) {
	payload, err := json.Marshal(classifyRequest{Text: input})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/classify", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
