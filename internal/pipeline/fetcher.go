package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/text"
	"github.com/clarionhq/clarion/internal/util"
)

const fetchMaxRetries = 3

// Fetcher retrieves a URL and reduces it to analyzable plain text
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
}

// NewFetcher creates a fetcher from the HTTP configuration
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
	}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	client := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return fmt.Errorf("stopped after 3 redirects")
			}
			return nil
		},
	}
	return &Fetcher{
		httpClient: client,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
		robots:     util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
	}
}

// FetchResult contains the extracted page text and metadata
type FetchResult struct {
	Text       string
	Title      string
	FinalURL   string
	StatusCode int
}

// Fetch retrieves the URL, honoring robots.txt, and extracts the visible
// text from its HTML. Non-HTML content comes back as-is up to the size cap.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if !f.robots.Allowed(ctx, rawURL) {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	result := &FetchResult{
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "html") {
		result.Text, result.Title = visibleText(string(body))
	} else {
		result.Text = text.Clean(string(body))
	}
	return result, nil
}

// FetchWithRetry retries transient failures (network errors and 5xx
// responses) with a short linear backoff.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchMaxRetries; attempt++ {
		result, err := f.Fetch(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !isTransient(err) || attempt == fetchMaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
	}
	return nil, lastErr
}

func isTransient(err error) bool {
	msg := err.Error()
	for _, code := range []string{"status: 500", "status: 502", "status: 503", "status: 504"} {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset")
}

// Tags whose subtrees carry no readable content
var skippedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "nav": true,
	"header": true, "footer": true, "aside": true, "form": true,
	"iframe": true, "svg": true,
}

// visibleText walks the parsed HTML and collects readable text, skipping
// chrome and code. Block elements become paragraph breaks so sentence
// splitting still works downstream.
func visibleText(htmlContent string) (body, title string) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return text.Clean(htmlContent), ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skippedTags[n.Data] {
				return
			}
			if n.Data == "title" && title == "" && n.FirstChild != nil {
				title = strings.TrimSpace(n.FirstChild.Data)
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlockTag(n.Data) {
			b.WriteString("\n")
		}
	}
	walk(doc)

	return text.Clean(b.String()), title
}

func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "li", "br", "tr",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		return true
	}
	return false
}
