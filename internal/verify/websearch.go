package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/clarionhq/clarion/internal/cache"
	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/util"
)

const searchMaxEvidence = 5

// SearchResult is one parsed result from the search page
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// WebSearch verifies claims against web search result snippets. The search
// call itself failing is a service error; zero results is a valid
// NotEnoughEvidence outcome.
type WebSearch struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxResults int
	timeout    time.Duration
	limiter    *util.Limiter
	cache      cache.Cache // nil disables caching
}

// NewWebSearch creates the web-search verifier
func NewWebSearch(cfg model.SearchConfig, httpCfg model.HTTPConfig, store cache.Cache) *WebSearch {
	return &WebSearch{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
		},
		baseURL:    cfg.BaseURL,
		userAgent:  httpCfg.UserAgent,
		maxResults: cfg.MaxResults,
		timeout:    cfg.Timeout,
		limiter:    util.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		cache:      store,
	}
}

// Kind implements Verifier.
func (v *WebSearch) Kind() model.VerifierKind { return model.VerifierWebSearch }

// Verify searches for the claim text and assigns a verdict from the
// lexical agreement between the claim and the result snippets.
func (v *WebSearch) Verify(ctx context.Context, claim model.Claim) (*Finding, error) {
	query := strings.TrimSpace(claim.Text)
	if query == "" {
		return &Finding{Label: model.LabelNotEnoughEvidence}, nil
	}

	results, err := v.search(ctx, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, timeout(v.Kind(), err)
		}
		return nil, unavailable(v.Kind(), err)
	}

	if len(results) == 0 {
		return &Finding{Label: model.LabelNotEnoughEvidence}, nil
	}

	// Score each result and judge from the best-matching one
	best := agreement{}
	var evidence []model.Evidence
	for _, r := range results {
		body := strings.TrimSpace(r.Title + " " + r.Snippet)
		if body == "" {
			continue
		}
		if a := assessAgreement(claim.Text, body); a.Similarity > best.Similarity {
			best = a
		}
		if len(evidence) < searchMaxEvidence {
			evidence = append(evidence, model.Evidence{
				Snippet:  body,
				Source:   r.URL,
				Verifier: model.VerifierWebSearch,
			})
		}
	}

	return &Finding{
		Label:      verdictFor(best),
		Evidence:   evidence,
		Similarity: best.Similarity,
	}, nil
}

// search runs the rate-limited, cached search request
func (v *WebSearch) search(ctx context.Context, query string) ([]SearchResult, error) {
	key := cache.Key("search", query)
	if v.cache != nil {
		if data, found := v.cache.Get(key); found {
			var cached []SearchResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	if err := v.limiter.Wait(ctx, v.baseURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	reqURL := v.baseURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", v.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	results, err := parseSearchResults(resp.Body, v.maxResults)
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	if v.cache != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = v.cache.Set(key, data, 0)
		}
	}
	return results, nil
}

// parseSearchResults extracts (title, snippet, URL) triples from the HTML
// results page of the DuckDuckGo non-JS endpoint.
func parseSearchResults(body io.Reader, max int) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	results := []SearchResult{}
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a").First()
		title := strings.TrimSpace(link.Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())
		href, _ := link.Attr("href")

		if title == "" && snippet == "" {
			return true
		}
		results = append(results, SearchResult{
			Title:   title,
			Snippet: snippet,
			URL:     resolveRedirect(href),
		})
		return len(results) < max
	})

	return results, nil
}

// resolveRedirect unwraps the search engine's /l/?uddg= redirect links to
// the destination URL.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	if parsed.Scheme == "" {
		return "https:" + href
	}
	return href
}
